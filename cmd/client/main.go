// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command client is a small command-line client of the career-compass API.
//
// Usage:
//
//	client [-url URL] [-token TOKEN] <command> [args]
//
// Commands:
//
//	health
//	register <name> <email> <password> [class] [section]
//	login <email> <password>
//	me
//	assess <label>...                    answer-based assessment
//	assess-scores <o> <c> <e> <a> <n>     score-based assessment
//	assessments
//	careers
//	search <skill>
//	recommend [trait=..] [type=..] [skills=a,b]
//
// register and login print the issued token; pass it to later commands
// with -token or ADAPTER_TOKEN.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/MKhiriev/career-compass/internal/adapter"
	"github.com/MKhiriev/career-compass/internal/config"
	"github.com/MKhiriev/career-compass/internal/logger"
	"github.com/MKhiriev/career-compass/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

var errUsage = errors.New("usage: client [-url URL] [-token TOKEN] <command> [args]")

func main() {
	log := logger.NewConsoleLogger("career-compass-client")

	cfg, err := config.GetAdapterConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	fs := flag.NewFlagSet("client", flag.ExitOnError)
	fs.StringVar(&cfg.BaseURL, "url", cfg.BaseURL, "server base url")
	token := fs.String("token", os.Getenv("ADAPTER_TOKEN"), "bearer token")
	version := fs.Bool("version", false, "print build info and exit")
	_ = fs.Parse(os.Args[1:])

	if *version {
		info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
		fmt.Printf("Build version: %s\nBuild date: %s\nBuild commit: %s\n", info.BuildVersion(), info.BuildDate(), info.BuildCommit())
		return
	}

	api, err := adapter.NewHTTPServerAdapter(*cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}
	api.SetToken(*token)

	out, err := run(context.Background(), api, fs.Args())
	if err != nil {
		log.Fatal().Err(err).Msg("command failed")
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err = enc.Encode(out); err != nil {
		log.Fatal().Err(err).Msg("write output")
	}
}

func run(ctx context.Context, api adapter.ServerAdapter, args []string) (any, error) {
	if len(args) == 0 {
		return nil, errUsage
	}

	cmd, args := args[0], args[1:]
	switch cmd {
	case "health":
		return api.Health(ctx)

	case "register":
		if len(args) < 3 {
			return nil, fmt.Errorf("%w: register <name> <email> <password> [class] [section]", errUsage)
		}
		req := models.RegisterRequest{Name: args[0], Email: args[1], Password: args[2]}
		if len(args) > 3 {
			req.Class = args[3]
		}
		if len(args) > 4 {
			req.Section = args[4]
		}
		user, err := api.Register(ctx, req)
		return session(api, user), err

	case "login":
		if len(args) != 2 {
			return nil, fmt.Errorf("%w: login <email> <password>", errUsage)
		}
		user, err := api.Login(ctx, models.LoginRequest{Email: args[0], Password: args[1]})
		return session(api, user), err

	case "me":
		return api.Me(ctx)

	case "assess":
		answers := make([]models.Answer, 0, len(args))
		for _, label := range args {
			answers = append(answers, models.Answer{Answer: label})
		}
		return api.SubmitAssessment(ctx, models.SubmitAssessmentRequest{Answers: answers})

	case "assess-scores":
		scores, err := parseScores(args)
		if err != nil {
			return nil, err
		}
		return api.SubmitAssessment(ctx, models.SubmitAssessmentRequest{Scores: scores})

	case "assessments":
		return api.ListAssessments(ctx)

	case "careers":
		return api.ListCareers(ctx)

	case "search":
		if len(args) != 1 {
			return nil, fmt.Errorf("%w: search <skill>", errUsage)
		}
		return api.SearchCareers(ctx, args[0])

	case "recommend":
		return api.Recommend(ctx, parseRecommendation(args))

	default:
		return nil, fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}
}

func session(api adapter.ServerAdapter, user models.User) map[string]any {
	return map[string]any{"token": api.Token(), "user": user}
}

func parseScores(args []string) (*models.Scores, error) {
	if len(args) != 5 {
		return nil, fmt.Errorf("%w: assess-scores <o> <c> <e> <a> <n>", errUsage)
	}

	values := make([]float64, 0, len(args))
	for _, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid score %q: %w", arg, err)
		}
		values = append(values, v)
	}
	return models.NewScores(values[0], values[1], values[2], values[3], values[4]), nil
}

func parseRecommendation(args []string) models.RecommendationRequest {
	var req models.RecommendationRequest
	for _, arg := range args {
		key, value, _ := strings.Cut(arg, "=")
		switch key {
		case "trait":
			req.Trait = value
		case "type":
			req.TypeCode = value
		case "skills":
			req.Skills = strings.Split(value, ",")
		}
	}
	return req
}
