package game

import (
	"errors"
	"path/filepath"

	"github.com/ncruces/zenity"

	"github.com/iburimskiy/apollonian-packing/internal/export"
)

const defaultSaveName = "packing.svg"

func (g *Game) openSaveDialog() error {
	filename, err := zenity.SelectFileSave(
		zenity.Title("Save Packing"),
		zenity.Filename(defaultSaveName),
		zenity.ConfirmOverwrite(),
		zenity.FileFilters{
			{Name: "SVG image", Patterns: []string{"*.svg"}},
			{Name: "PNG image", Patterns: []string{"*.png"}},
		},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}

	if filepath.Ext(filename) == "" {
		filename += filepath.Ext(defaultSaveName)
	}
	return export.ToFile(filename, g.gen.Circles(), export.Options{
		Palette: g.palette,
		Padding: g.cfg.Render.Padding,
	})
}
