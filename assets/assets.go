package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lafriks/go-tiled"
	"github.com/lafriks/go-tiled/render"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

// LevelFS returns the filesystem holding the embedded level files. Paths
// are rooted at the assets directory, e.g. "levels/rooms.tmx".
func LevelFS() fs.FS {
	return assetFS
}

// LoadBackground renders the tile layers of a level flagged with the "render"
// property into a single image in Tiled pixel space.
func LoadBackground(levelPath string) (*ebiten.Image, error) {
	levelMap, err := tiled.LoadFile(levelPath, tiled.WithFileSystem(assetFS))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", levelPath, err)
	}

	background := ebiten.NewImage(
		levelMap.Width*levelMap.TileWidth,
		levelMap.Height*levelMap.TileHeight,
	)

	renderer, err := render.NewRendererWithFileSystem(levelMap, assetFS)
	if err != nil {
		return nil, fmt.Errorf("create renderer for %s: %w", levelPath, err)
	}

	for i, layer := range levelMap.Layers {
		if !layer.Properties.GetBool("render") {
			continue
		}
		if err := renderer.RenderLayer(i); err != nil {
			log.Printf("Warning: Failed to render layer %d: %v", i, err)
			continue
		}
		opacity := layer.Opacity
		if opacity <= 0 {
			renderer.Clear()
			continue
		}
		layerImage := ebiten.NewImageFromImage(renderer.Result)
		op := &ebiten.DrawImageOptions{}
		op.ColorScale.ScaleAlpha(float32(opacity))
		background.DrawImage(layerImage, op)
		layerImage.Deallocate()
		renderer.Clear()
	}

	return background, nil
}
