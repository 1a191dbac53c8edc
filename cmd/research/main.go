package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	// Packages
	kong "github.com/alecthomas/kong"
	godotenv "github.com/joho/godotenv"
	client "github.com/mutablelogic/go-client"
	research "github.com/mutablelogic/go-research"
	manager "github.com/mutablelogic/go-research/pkg/manager"
	openai "github.com/mutablelogic/go-research/pkg/provider/openai"
	session "github.com/mutablelogic/go-research/pkg/session"
	zerolog "github.com/rs/zerolog"
	log "github.com/rs/zerolog/log"
	otel "go.opentelemetry.io/otel"
	trace "go.opentelemetry.io/otel/trace"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type Globals struct {
	// Debugging
	Debug    bool   `name:"debug" help:"Enable debug output"`
	Verbose  bool   `name:"verbose" help:"Enable verbose output"`
	LogLevel string `name:"log-level" enum:"trace,debug,info,warn,error" default:"info" help:"Log level"`

	// Research
	OpenAIKey string        `name:"openai-api-key" env:"OPENAI_API_KEY" help:"OpenAI API key"`
	Timeout   time.Duration `name:"timeout" help:"Time limit for a research request, or zero for none" default:"0s"`
	Config    string        `name:"config" type:"path" help:"Defaults file" default:"${config}"`

	// HTTP server options
	HTTP struct {
		Addr   string `name:"addr" env:"RESEARCH_ADDR" help:"HTTP listen address" default:"localhost:8080"`
		Prefix string `name:"prefix" help:"HTTP path prefix" default:"/"`
		Origin string `name:"origin" help:"Cross-origin protection (CSRF) origin. Empty string for same-origin only, '*' to allow all cross-origin requests" default:""`
	} `embed:"" prefix:"http."`

	// Context
	ctx      context.Context
	tracer   trace.Tracer
	log      zerolog.Logger
	execName string
}

type CLI struct {
	Globals

	// Commands
	Run     RunCommand     `cmd:"" name:"run" help:"Configure and run deep research in the terminal." default:"1"`
	Ask     AskCommand     `cmd:"" name:"ask" help:"Run deep research on a question without prompting."`
	Serve   ServeCommand   `cmd:"" name:"serve" help:"Run the web server."`
	Models  ModelsCommand  `cmd:"" name:"models" help:"List models."`
	Version VersionCommand `cmd:"" name:"version" help:"Print version information."`
}

////////////////////////////////////////////////////////////////////////////////
// MAIN

func main() {
	// Read environment variables from a .env file if present
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintln(os.Stderr, "warning: .env:", err)
	}

	// Create a cli parser
	cli := CLI{}
	cmd := kong.Parse(&cli,
		kong.Name(execName()),
		kong.Description("Deep research command line interface"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Vars{
			"config": defaultConfigPath(),
		},
	)

	// Create a context
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	cli.Globals.ctx = ctx
	cli.Globals.execName = execName()
	cli.Globals.tracer = otel.Tracer(cli.Globals.execName)

	// Create a logger
	level, err := zerolog.ParseLevel(cli.LogLevel)
	cmd.FatalIfErrorf(err)
	if cli.Debug {
		level = zerolog.DebugLevel
	}
	cli.Globals.setLogger(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}, level)

	// Run the command
	if err := cmd.Run(&cli.Globals); err != nil {
		cmd.FatalIfErrorf(err)
		return
	}
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Defaults returns the configuration from the defaults file, if it
// exists, with the command line applied
func (g *Globals) Defaults(opts ...session.Opt) (*session.Config, error) {
	opts = append([]session.Opt{session.WithCredential(g.OpenAIKey)}, opts...)
	if g.Timeout > 0 {
		opts = append(opts, session.WithTimeout(g.Timeout))
	}
	if g.Config != "" {
		config, err := session.Load(g.Config, opts...)
		if !errors.Is(err, research.ErrNotFound) {
			return config, err
		}
	}
	return session.New(opts...)
}

// Connect returns a researcher which uses the credential
func (g *Globals) Connect(credential string) (research.Researcher, error) {
	return openai.New(credential, g.clientOpts()...)
}

// Manager returns a research manager which starts from the defaults
func (g *Globals) Manager(opts ...manager.Opt) (*manager.Manager, error) {
	defaults, err := g.Defaults()
	if err != nil {
		return nil, err
	}
	return manager.New(g.Connect, append([]manager.Opt{
		manager.WithDefaults(defaults),
		manager.WithLogger(g.log),
		manager.WithTracer(g.tracer),
	}, opts...)...)
}

// LogToFile sends log output to a file in the user cache directory, so
// that it does not disturb a full-screen display
func (g *Globals) LogToFile() (io.Closer, error) {
	cache, err := os.UserCacheDir()
	if err != nil {
		return nil, err
	}
	path := filepath.Join(cache, g.execName, g.execName+".log")
	if err := os.MkdirAll(filepath.Dir(path), session.DirPerm); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, session.FilePerm)
	if err != nil {
		return nil, err
	}
	g.setLogger(f, g.log.GetLevel())
	return f, nil
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func execName() string {
	// The name of the executable
	name, err := os.Executable()
	if err != nil {
		panic(err)
	} else {
		return filepath.Base(name)
	}
}

func defaultConfigPath() string {
	if path, err := session.DefaultPath(); err == nil {
		return path
	}
	return ""
}

func (g *Globals) setLogger(w io.Writer, level zerolog.Level) {
	g.log = zerolog.New(w).Level(level).With().Timestamp().Logger()
	log.Logger = g.log
}

func (g *Globals) clientOpts() []client.ClientOpt {
	result := []client.ClientOpt{}
	if g.Debug {
		result = append(result, client.OptTrace(os.Stderr, g.Verbose))
	}
	if g.tracer != nil {
		result = append(result, client.OptTracer(g.tracer))
	}
	return result
}
