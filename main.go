// Copyright 2016, Timothy Bogdala <tdb@animal-machine.com>
// See the LICENSE file for more details.

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"

	glfw "github.com/go-gl/glfw/v3.3/glfw"
	"github.com/urfave/cli/v2"

	graphics "github.com/tbogdala/hellogl/graphicsprovider"
	opengl "github.com/tbogdala/hellogl/graphicsprovider/opengl"
)

const (
	exitOK    = 0
	exitFatal = -1
)

const (
	msgGLFWInit     = "Failed to initialize GLFW"
	msgWindowCreate = "Failed to create GLFW window"
	msgLoader       = "Failed to initialize OpenGL function pointers"
	msgPipeline     = "Failed to build the shader program"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	app := newApp(func(cfg *Config) int {
		return run(cfg, os.Stdout)
	})
	if err := app.Run(os.Args); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// newApp builds the command line application; runner is called with the
// final configuration and returns the process exit code.
func newApp(runner func(cfg *Config) int) *cli.App {
	return &cli.App{
		Name:  "hellogl",
		Usage: "open a window and draw a triangle with OpenGL 3.3 core",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "variant", Value: variantTriangle, Usage: "program variant: window or triangle"},
			&cli.StringFlag{Name: "config", Usage: "TOML file overriding the variant defaults"},
			&cli.StringFlag{Name: "title", Usage: "window title"},
			&cli.IntFlag{Name: "width", Usage: "window width"},
			&cli.IntFlag{Name: "height", Usage: "window height"},
			&cli.StringFlag{Name: "pipeline-failure", Usage: "what to do when the shaders fail: fatal or skip"},
			&cli.BoolFlag{Name: "verbose", Usage: "log debug messages to stderr"},
		},
		Action: func(c *cli.Context) error {
			cfg, err := configFromContext(c)
			if err != nil {
				return err
			}
			if code := runner(&cfg); code != exitOK {
				return cli.Exit("", code)
			}
			return nil
		},
	}
}

// configFromContext layers the variant defaults, the config file and the
// command line flags, in that order.
func configFromContext(c *cli.Context) (Config, error) {
	cfg, err := DefaultConfig(c.String("variant"))
	if err != nil {
		return Config{}, err
	}
	if path := c.String("config"); path != "" {
		if err := LoadConfigFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}
	if c.IsSet("title") {
		cfg.Title = c.String("title")
	}
	if c.IsSet("width") {
		cfg.Width = c.Int("width")
	}
	if c.IsSet("height") {
		cfg.Height = c.Int("height")
	}
	if c.IsSet("pipeline-failure") {
		cfg.PipelineFailure = c.String("pipeline-failure")
	}
	if c.IsSet("verbose") {
		cfg.Verbose = c.Bool("verbose")
	}
	return cfg, cfg.Validate()
}

func setupLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// Session is the window and context that the program draws into.
// *WindowSession is the GLFW implementation.
type Session interface {
	GetMainWindow() Window
	FramebufferSize() (int, int)
	SetResizeHandler(r Resizable)
	Close()
}

// bootstrap holds the calls run makes into the windowing library.
type bootstrap struct {
	// openWindow must return a session that can be closed even when err
	// is non-nil.
	openWindow   func(cfg *Config) (Session, error)
	initGraphics func() (graphics.GraphicsProvider, error)
	pollEvents   func()
}

func glfwBootstrap() bootstrap {
	return bootstrap{
		openWindow: func(cfg *Config) (Session, error) {
			return OpenWindow(cfg)
		},
		initGraphics: func() (graphics.GraphicsProvider, error) {
			return opengl.InitOpenGL(glfw.GetProcAddress)
		},
		pollEvents: glfw.PollEvents,
	}
}

// run opens the window, builds the scene and runs the frame loop until the
// window is closed. It returns the process exit code; everything acquired
// is released before it returns.
func run(cfg *Config, out io.Writer) int {
	return glfwBootstrap().run(cfg, out)
}

func (b bootstrap) run(cfg *Config, out io.Writer) int {
	setupLogging(cfg.Verbose)
	reporter := NewReporter(out)

	session, err := b.openWindow(cfg)
	if session != nil {
		defer session.Close()
	}
	if err != nil {
		slog.Debug("window bootstrap failed", "err", err)
		if errors.Is(err, ErrGLFWInit) {
			reporter.Alert(msgGLFWInit)
		} else {
			reporter.Alert(msgWindowCreate)
		}
		return exitFatal
	}

	gfx, err := b.initGraphics()
	if err != nil {
		slog.Debug("OpenGL loader failed", "err", err)
		reporter.Alert(msgLoader)
		return exitFatal
	}

	// create the render system and initialize it
	window := session.GetMainWindow()
	renderSystem := NewForwardRenderSystem(gfx, window, reporter)
	fbWidth, fbHeight := session.FramebufferSize()
	renderSystem.Initialize(cfg, fbWidth, fbHeight)
	session.SetResizeHandler(renderSystem)
	defer renderSystem.Shutdown()

	inputSystem := NewKeyboardInputSystem()
	inputSystem.Initialize(window)

	scene := NewScene()
	scene.AddSystem(renderSystem)
	scene.AddSystem(inputSystem)

	if err := scene.SetupScene(cfg); err != nil {
		reporter.Println(err.Error())
		if cfg.PipelineFailure == pipelineFailureFatal {
			reporter.Alert(msgPipeline)
			return exitFatal
		}
	}

	runFrameLoop(window, scene, b.pollEvents)
	return exitOK
}

// runFrameLoop updates the scene and pumps window events until the window
// is flagged to close. Frames are not timed.
func runFrameLoop(window Window, scene *Scene, pollEvents func()) {
	for !window.ShouldClose() {
		scene.Update(0)

		// advise GLFW to poll for input. without this the window appears to hang.
		pollEvents()
	}
}
