package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"boomictl/internal/boomi"
	"boomictl/internal/logger"

	"github.com/google/uuid"
	"github.com/spf13/viper"
)

// connectionFromConfig builds the ConnectionContext from the resolved
// settings, reporting every missing value at once.
func connectionFromConfig() (boomi.ConnectionContext, error) {
	conn := boomi.ConnectionContext{
		BaseURL:    viper.GetString("url"),
		PathPrefix: viper.GetString("path"),
		Username:   viper.GetString("username"),
		Password:   viper.GetString("password"),
	}

	var missing []string
	if conn.PathPrefix == "" {
		missing = append(missing, "path")
	}
	if conn.Username == "" {
		missing = append(missing, "username")
	}
	if conn.Password == "" {
		missing = append(missing, "password")
	}
	if len(missing) > 0 {
		return conn, fmt.Errorf("missing connection settings: %s. Set them via flags, BOOMI_* environment variables, or the config file", strings.Join(missing, ", "))
	}

	return conn, nil
}

// newClient builds the API client with a per-invocation correlation ID
// attached to its logger. The returned context carries the same ID.
func newClient() (*boomi.Client, context.Context, error) {
	conn, err := connectionFromConfig()
	if err != nil {
		return nil, nil, err
	}

	level := slog.LevelInfo
	if viper.GetBool("verbose") {
		level = slog.LevelDebug
	}

	ctx := logger.WithCorrelationID(context.Background(), uuid.NewString())
	log := logger.FromContext(ctx, logger.New(level))

	return boomi.NewClient(conn, boomi.WithLogger(log)), ctx, nil
}

// describeError renders a failure kind as an operator-facing message.
func describeError(err error) string {
	var (
		notFound     *boomi.NotFoundError
		ambiguous    *boomi.AmbiguityError
		mismatch     *boomi.MismatchError
		notConfirmed *boomi.LaunchNotConfirmedError
		timeout      *boomi.PollTimeoutError
		pollFailure  *boomi.PollTransportError
		transport    *boomi.TransportError
	)
	switch {
	case errors.As(err, &notFound):
		return fmt.Sprintf("Validation failed: %v", err)
	case errors.As(err, &ambiguous):
		return fmt.Sprintf("Validation failed: %v", err)
	case errors.As(err, &mismatch):
		return fmt.Sprintf("Validation failed: %v", err)
	case errors.As(err, &notConfirmed):
		return fmt.Sprintf("Launch not confirmed: %v. Check the platform before retrying, the run may have started", err)
	case errors.As(err, &timeout):
		return fmt.Sprintf("Wait timed out: %v", err)
	case errors.As(err, &pollFailure):
		return fmt.Sprintf("Wait failed: %v", err)
	case errors.As(err, &transport):
		return fmt.Sprintf("API request failed: %v", err)
	default:
		return fmt.Sprintf("Error: %v", err)
	}
}
