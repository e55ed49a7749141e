package main

import (
	"log"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/pkg/errors"

	"github.com/hexaflex/palquad/geom"
	"github.com/hexaflex/palquad/indexed"
	"github.com/hexaflex/palquad/render"
)

// background is the framebuffer clear color.
var background = [4]float32{0.2, 0.3, 0.3, 1.0}

// App defines application context.
type App struct {
	config         *Config          // Application configuration.
	window         *glfw.Window     // OpenGL/GLFW context.
	display        *render.Renderer // Draws the indexed-color sprite.
	frames         uint64           // Number of frames presented so far.
	closeRequested bool             // Set once the main loop should end.
	helpDown       bool             // State of the help key during the last poll.
}

// NewApp creates a new application instance using the given configuration.
func NewApp(config *Config) *App {
	return &App{config: config}
}

// Run runs the application and does not return until it is finished
// or an error occured.
func (a *App) Run() error {
	if err := a.initGL(); err != nil {
		return err
	}

	defer a.dispose()

	log.Println(Version())
	printHelp()

	config, err := a.rendererConfig()
	if err != nil {
		return err
	}

	a.display = render.New(config)
	if err := a.display.Startup(); err != nil {
		return errors.Wrapf(err, "renderer startup failed")
	}

	for !a.closeRequested {
		if err := a.mainLoop(); err != nil {
			return err
		}
	}

	log.Printf("presented %d frames", a.frames)
	return nil
}

// mainLoop polls input, then renders and presents a single frame.
func (a *App) mainLoop() error {
	glfw.PollEvents()
	a.pollInput()

	if a.closeRequested {
		return nil
	}

	if err := a.display.Draw(); err != nil {
		return errors.Wrapf(&renderError{err}, "frame %d", a.frames)
	}

	a.window.SwapBuffers()
	a.frames++
	return nil
}

// pollInput reads the keyboard state and updates the close flag.
func (a *App) pollInput() {
	if a.window.ShouldClose() || a.window.GetKey(glfw.KeyEscape) == glfw.Press {
		a.closeRequested = true
	}

	help := a.window.GetKey(glfw.KeyF1) == glfw.Press
	if help && !a.helpDown {
		printHelp()
	}
	a.helpDown = help
}

// rendererConfig builds the renderer configuration from the embedded
// sprite and palette.
func (a *App) rendererConfig() (render.Config, error) {
	sprite, err := indexed.NewImage(spriteWidth, spriteHeight, spriteData)
	if err != nil {
		return render.Config{}, errors.Wrapf(err, "invalid sprite data")
	}

	palette, err := indexed.ParsePalette(paletteData)
	if err != nil {
		return render.Config{}, errors.Wrapf(err, "invalid palette data")
	}

	scale := float32(a.config.ScaleFactor)
	w := float32(sprite.Width) * scale
	h := float32(sprite.Height) * scale

	return render.Config{
		Projection: geom.ScreenProjection(a.config.Width, a.config.Height),
		Mesh:       geom.Quad(a.config.X, a.config.Y, w, h),
		Sprite:     sprite,
		Palette:    palette,
		Background: background,
	}, nil
}

// dispose ensures openGL/GLFW and other resources are cleaned up.
func (a *App) dispose() {
	if a.display != nil {
		if err := a.display.Shutdown(); err != nil {
			log.Println(err)
		}
		a.display = nil
	}

	if a.window != nil {
		a.window.Destroy()
		a.window = nil
	}

	glfw.Terminate()
}

// initGL initializes GLFW and openGL.
func (a *App) initGL() error {
	err := glfw.Init()
	if err != nil {
		return errors.Wrapf(err, "glfw.Init failed")
	}

	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.Visible, glfw.True)
	glfw.WindowHint(glfw.Focused, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	a.window, err = glfw.CreateWindow(a.config.Width, a.config.Height, AppName, nil, nil)
	if err != nil {
		a.dispose()
		return errors.Wrapf(err, "glfw.CreateWindow failed")
	}

	a.window.MakeContextCurrent()
	a.window.SetInputMode(glfw.StickyKeysMode, glfw.True)

	if a.config.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	err = gl.Init()
	if err != nil {
		a.dispose()
		return errors.Wrapf(err, "gl.Init failed")
	}

	log.Println("OpenGL", gl.GoStr(gl.GetString(gl.VERSION)))

	width, height := a.window.GetFramebufferSize()
	gl.Viewport(0, 0, int32(width), int32(height))
	return nil
}

// printHelp writes a short overview of supported shortcut keys to stdout.
func printHelp() {
	var sb strings.Builder
	sb.WriteString("shortcut keys:\n")
	sb.WriteString(" ESC      Exit the program.\n")
	sb.WriteString(" F1       Display this help.")
	log.Println(sb.String())
}
