package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"time"
)

// Command-line flags construct a Config the way the teacher's main.go
// builds its engine settings from flag.Bool/flag.Float64, rather than a
// config file or env vars (§9.1).
func flagsToConfig() Config {
	cfg := DefaultConfig()

	wireframe := flag.Bool("wireframe", cfg.Wireframe, "draw wireframe overlay")
	fog := flag.Bool("fog", cfg.Fog, "enable distance fog")
	faceLighting := flag.Bool("face-lighting", cfg.FaceLighting, "enable per-face lighting")
	lightTracksCamera := flag.Bool("light-tracks-camera", cfg.LightTracksCamera, "light direction follows the camera")
	vertexColor := flag.Bool("vertex-color", cfg.VertexColor, "apply per-vertex color darkening")
	shadeFlat := flag.Bool("flat", cfg.ShadeFlat, "shade with flat white instead of the texture")
	textureFilter := flag.Bool("bilinear", cfg.TextureFilter, "bilinear texture filtering (nearest otherwise)")
	bloom := flag.Bool("bloom", cfg.Bloom, "enable bloom post-process")
	dofBlur := flag.Bool("dof", cfg.DOFBlur, "enable depth-of-field blur")
	spin := flag.Bool("spin", cfg.Spin, "auto-spin loaded instances")
	parallel := flag.Bool("parallel", cfg.ParallelRasterize, "rasterize tiles concurrently")
	fov := flag.Float64("fov", cfg.FOV, "field of view scale")
	near := flag.Float64("near", cfg.CameraNear, "camera near clip plane")
	fogDepth := flag.Float64("fog-depth", cfg.FogDepth, "fog falloff scale")
	blurSize := flag.Int("blur-size", cfg.BlurSize, "depth-of-field blur radius")
	spinSpeed := flag.Float64("spin-speed", cfg.SpinSpeed, "radians per second when -spin is set")
	flag.Parse()

	cfg.Wireframe = *wireframe
	cfg.Fog = *fog
	cfg.FaceLighting = *faceLighting
	cfg.LightTracksCamera = *lightTracksCamera
	cfg.VertexColor = *vertexColor
	cfg.ShadeFlat = *shadeFlat
	cfg.TextureFilter = *textureFilter
	cfg.Bloom = *bloom
	cfg.DOFBlur = *dofBlur
	cfg.Spin = *spin
	cfg.ParallelRasterize = *parallel
	cfg.FOV = *fov
	cfg.CameraNear = *near
	cfg.FogDepth = *fogDepth
	cfg.BlurSize = *blurSize
	cfg.SpinSpeed = *spinSpeed
	return cfg
}

const frameSize = 96

func main() {
	meshPath := flag.String("mesh", "testModel.obj", "path to the .obj mesh to load")
	texturePath := flag.String("texture", "testTexture.png", "path to the texture image")
	cfg := flagsToConfig()

	assets := NewAssetCache()
	scene := NewScene(cfg)

	// §7: a missing asset starts the renderer with an empty scene rather
	// than crashing.
	mesh, err := assets.Mesh(*meshPath)
	if err != nil {
		log.Printf("mesh load failed, starting with an empty scene: %v", err)
	} else {
		scene.AddInstance(NewMeshInstance(mesh))
	}

	tex, err := assets.Texture(*texturePath)
	if err != nil {
		log.Printf("texture load failed, using a blank texture: %v", err)
		tex = &Texture2D{}
	}

	input := NewInputManager()
	if err := input.Start(); err != nil {
		log.Printf("keyboard input unavailable, running without input: %v", err)
		input = nil
	} else {
		defer input.Stop()
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)

	fb := NewFramebuffer(frameSize)
	display := NewANSIDisplay(os.Stdout)

	const targetFPS = 30
	frameDuration := time.Second / targetFPS
	last := time.Now()

	for {
		select {
		case <-sigCh:
			display.Reset()
			return
		default:
		}

		now := time.Now()
		dt := now.Sub(last).Seconds()
		last = now

		if input != nil {
			state := input.Poll()
			if state.Quit {
				display.Reset()
				return
			}
			ApplyInput(state, scene.Camera, &scene.Config)
		}

		fb.Clear()
		scene.Frame(dt)
		if scene.Config.ParallelRasterize {
			scene.DrawParallel(fb, tex)
		} else {
			scene.Draw(fb, tex)
		}
		if err := display.Present(fb); err != nil {
			log.Printf("display error: %v", err)
			return
		}

		elapsed := time.Since(now)
		if elapsed < frameDuration {
			time.Sleep(frameDuration - elapsed)
		}
	}
}
