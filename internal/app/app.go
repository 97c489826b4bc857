package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/akutuzov/jobgraph/internal/command"
	"github.com/akutuzov/jobgraph/internal/datasources"
	"github.com/akutuzov/jobgraph/internal/datasources/mistral"
	"github.com/akutuzov/jobgraph/internal/datasources/neo4j"
	"github.com/akutuzov/jobgraph/internal/datasources/pinecone"
	"github.com/akutuzov/jobgraph/internal/transport/web/router"
	"github.com/akutuzov/jobgraph/internal/transport/web/server"
)

type Component interface {
	Run(ctx context.Context) error
}

func Setup(ctx context.Context) ([]Component, error) {
	graph, err := SetupGraphRepository(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up graph repository: %w", err)
	}

	embedder, err := SetupEmbedder(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up embedder: %w", err)
	}

	vectors, err := SetupVectorSearcher(ctx, graph)
	if err != nil {
		return nil, fmt.Errorf("setting up vector searcher: %w", err)
	}

	authMiddleware, err := setupAuthMiddleware(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up auth middleware: %w", err)
	}

	updatePreferencesCmd := command.NewUpdateUserPreferences(
		graph,
		graph,
		FeedbackConfigFromEnv(ctx),
	)

	recordFeedbackCmd := command.NewRecordFeedback(
		graph,
		graph,
		updatePreferencesCmd,
	)

	recommendVacanciesCmd := command.NewRecommendVacancies(
		graph,
		graph,
		graph,
		vectors,
		graph,
		RecommendVacanciesConfigFromEnv(ctx),
	)

	upsertUserCmd := command.NewUpsertUser(embedder, graph)

	httpRouter, err := router.MakeRouter(
		graph,
		recommendVacanciesCmd,
		recordFeedbackCmd,
		upsertUserCmd,
		MustGetEnvAsString(ctx, "RSS_FEED_BASE_URL"),
		MustGetEnvAsString(ctx, "RSS_FEED_AUTHOR_NAME"),
		MustGetEnvAsString(ctx, "RSS_FEED_AUTHOR_EMAIL"),
		MustGetEnvAsDuration(ctx, "RSS_FEED_LATEST_CACHE_MAX_AGE"),
		authMiddleware,
	)
	if err != nil {
		return nil, fmt.Errorf("unable to create HTTP router: %w", err)
	}

	return []Component{
		&server.Server{
			TLSDisabled:      MustGetEnvAsBoolean(ctx, "HTTP_TLS_DISABLED"),
			TLSDisabledPort:  MustGetEnvAsInt(ctx, "PORT"),
			AutocertHostname: MustGetEnvAsString(ctx, "HTTP_AUTOCERT_HOSTNAME"),
			Router:           httpRouter,
		},
	}, nil
}

func SetupGraphRepository(ctx context.Context) (datasources.GraphRepository, error) {
	client, err := neo4j.Connect(
		ctx,
		MustGetEnvAsString(ctx, "NEO4J_URI"),
		MustGetEnvAsString(ctx, "NEO4J_USER"),
		MustGetEnvAsString(ctx, "NEO4J_PASSWORD"),
	)
	if err != nil {
		return nil, fmt.Errorf("connecting to neo4j: %w", err)
	}

	repository := neo4j.New(client)
	repository.InitializeSchema(ctx)
	return repository, nil
}

func SetupEmbedder(ctx context.Context) (datasources.Embedder, error) {
	switch driver := MustGetEnvAsString(ctx, "EMBEDDER_DRIVER"); driver {
	case "null":
		return datasources.NullEmbedder{}, nil
	case "mistral":
		return mistral.NewClient(MustGetEnvAsString(ctx, "MISTRAL_API_KEY")), nil
	default:
		return nil, fmt.Errorf("unknown embedder driver [%s]", driver)
	}
}

func SetupVectorSearcher(
	ctx context.Context, embeddings datasources.VacancyEmbeddingLister,
) (datasources.VacancyVectorSearcher, error) {
	switch driver := MustGetEnvAsString(ctx, "SIMILARITY_DRIVER"); driver {
	case "null":
		return datasources.NullVectorSearcher{}, nil
	case "scan":
		return datasources.ScanVectorSearcher{Embeddings: embeddings}, nil
	case "pinecone":
		client, err := pinecone.NewClient(
			ctx,
			MustGetEnvAsString(ctx, "PINECONE_API_KEY"),
			MustGetEnvAsString(ctx, "PINECONE_INDEX_NAME"),
		)
		if err != nil {
			return nil, fmt.Errorf("connecting to pinecone: %w", err)
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unknown similarity driver [%s]", driver)
	}
}

func setupAuthMiddleware(ctx context.Context) (func(http.Handler) http.Handler, error) {
	var validators []router.AuthValidator

	for _, driver := range MustGetEnvAsStrings(ctx, "AUTH_DRIVERS") {
		switch driver {
		case "":
			// Skip empty strings (e.g., from splitting an empty AUTH_DRIVERS)
		case "auth0":
			v, err := router.NewAuth0Validator(
				MustGetEnvAsString(ctx, "AUTH0_DOMAIN"),
				MustGetEnvAsString(ctx, "AUTH0_AUDIENCE"),
			)
			if err != nil {
				return nil, fmt.Errorf("creating Auth0 validator: %w", err)
			}
			validators = append(validators, v)
		default:
			return nil, fmt.Errorf("unknown auth driver [%s]", driver)
		}
	}

	return router.NewAuthMiddleware(validators), nil
}
