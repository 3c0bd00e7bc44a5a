package main

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestAssetCacheMeshLoadsOnceAndCaches(t *testing.T) {
	path := writeTempOBJ(t, `
v 0 0 5
v 1 0 5
v 0 1 5
f 1 2 3
`)
	cache := NewAssetCache()

	m1, err := cache.Mesh(path)
	if err != nil {
		t.Fatal(err)
	}
	m2, err := cache.Mesh(path)
	if err != nil {
		t.Fatal(err)
	}
	if m1 != m2 {
		t.Error("AssetCache.Mesh returned a different pointer on the second load, want the cached one")
	}
}

func TestAssetCacheMeshMissingFilePropagatesError(t *testing.T) {
	cache := NewAssetCache()
	if _, err := cache.Mesh(filepath.Join(t.TempDir(), "missing.obj")); err == nil {
		t.Error("AssetCache.Mesh on a missing file returned no error")
	}
}

func TestAssetCacheTextureMissingFilePropagatesError(t *testing.T) {
	cache := NewAssetCache()
	if _, err := cache.Texture(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("AssetCache.Texture on a missing file returned no error")
	}
}

func TestAssetCacheTextureLoadsOnceAndCaches(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "blank.png")
	writeTinyPNG(t, path)

	cache := NewAssetCache()
	tex1, err := cache.Texture(path)
	if err != nil {
		t.Fatal(err)
	}
	tex2, err := cache.Texture(path)
	if err != nil {
		t.Fatal(err)
	}
	if tex1 != tex2 {
		t.Error("AssetCache.Texture returned a different pointer on the second load, want the cached one")
	}
}

// writeTinyPNG writes a real 1x1 white PNG, encoded with the standard
// library so LoadTexture has something genuinely valid to decode and
// resample rather than a hand-written byte literal.
func writeTinyPNG(t *testing.T, path string) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.Set(0, 0, color.RGBA{255, 255, 255, 255})

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}
