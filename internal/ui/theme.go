package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// highContrastTheme renders black backgrounds with yellow text and focus
// marks, for low-vision use. Everything it does not override falls through
// to the default theme's dark variant.
type highContrastTheme struct {
	base fyne.Theme
}

func newHighContrastTheme() *highContrastTheme {
	return &highContrastTheme{base: theme.DefaultTheme()}
}

func (t *highContrastTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground, theme.ColorNameOverlayBackground, theme.ColorNameMenuBackground:
		return color.Black
	case theme.ColorNameForeground:
		return color.RGBA{R: 0xff, G: 0xff, A: 0xff}
	case theme.ColorNameButton, theme.ColorNameInputBackground:
		return color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff}
	case theme.ColorNamePrimary, theme.ColorNameFocus, theme.ColorNameHyperlink:
		return color.RGBA{R: 0xff, G: 0xd7, A: 0xff}
	case theme.ColorNameDisabled:
		return color.RGBA{R: 0x8a, G: 0x8a, A: 0xff}
	default:
		return t.base.Color(name, theme.VariantDark)
	}
}

func (t *highContrastTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base.Font(style)
}

func (t *highContrastTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

func (t *highContrastTheme) Size(name fyne.ThemeSizeName) float32 {
	if name == theme.SizeNameText {
		return t.base.Size(name) + 2
	}
	return t.base.Size(name)
}
