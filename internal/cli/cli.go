package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"
	"wellness-service/internal/app"
	"wellness-service/internal/config"
	"wellness-service/internal/transport/grpc"
	"wellness-service/pkg/jwt"
)

// Context is passed to every command's Run method
type Context struct {
	Config *config.Config
	Out    io.Writer
}

// ServeCmd runs the gRPC server, the HTTP gateway and the reminder pipeline
type ServeCmd struct{}

func (c *ServeCmd) Run(ctx *Context) error {
	application, err := app.New(context.Background(), ctx.Config)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	return application.Run()
}

// RemoteFlags are embedded by commands that talk to a running server
type RemoteFlags struct {
	Addr    string        `help:"gRPC address of a running server." default:"localhost:50051" env:"WELLNESS_ADDR"`
	Timeout time.Duration `help:"Request timeout." default:"30s"`
}

func (r *RemoteFlags) call(fn func(ctx context.Context, client *grpc.Client) (any, error), out io.Writer) error {
	client, err := grpc.Dial(r.Addr)
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", r.Addr, err)
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), r.Timeout)
	defer cancel()

	resp, err := fn(ctx, client)
	if err != nil {
		return err
	}
	return writeJSON(out, resp)
}

// ExportCmd prints every record of a user as JSON
type ExportCmd struct {
	RemoteFlags `embed:""`
	User string `help:"User to export." required:""`
}

func (c *ExportCmd) Run(ctx *Context) error {
	return c.call(func(rctx context.Context, client *grpc.Client) (any, error) {
		return client.ExportData(rctx, &grpc.ExportRequest{UserID: c.User})
	}, ctx.Out)
}

// AnalyticsCmd prints analytics for a date range as JSON
type AnalyticsCmd struct {
	RemoteFlags `embed:""`
	User  string `help:"User to analyse." required:""`
	Start string `help:"First day (YYYY-MM-DD)." required:""`
	End   string `help:"Last day (YYYY-MM-DD)." required:""`
	Kind  string `help:"Which analytics to compute." enum:"mood,habits,medications,supplements,overview" default:"overview"`
}

func (c *AnalyticsCmd) Run(ctx *Context) error {
	req := &grpc.AnalyticsRequest{UserID: c.User, StartDate: c.Start, EndDate: c.End}
	return c.call(func(rctx context.Context, client *grpc.Client) (any, error) {
		switch c.Kind {
		case "mood":
			return client.GetMoodAnalytics(rctx, req)
		case "habits":
			return client.GetHabitAnalytics(rctx, req)
		case "medications":
			return client.GetMedicationAdherence(rctx, req)
		case "supplements":
			return client.GetSupplementAdherence(rctx, req)
		default:
			return client.GetOverview(rctx, req)
		}
	}, ctx.Out)
}

// TokenCmd mints a bearer token for the HTTP gateway
type TokenCmd struct {
	User string `help:"Token subject." required:""`
}

func (c *TokenCmd) Run(ctx *Context) error {
	identity := ctx.Config.Identity
	if identity.Secret == "" {
		return fmt.Errorf("identity.secret is not configured")
	}

	tokens := jwt.NewTokenManager(identity.Secret, identity.TokenTTL, identity.Issuer)
	token, expiresAt, err := tokens.GenerateToken(c.User)
	if err != nil {
		return err
	}

	return writeJSON(ctx.Out, map[string]any{
		"access_token": token,
		"token_type":   "Bearer",
		"expires_at":   expiresAt.UTC(),
	})
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
