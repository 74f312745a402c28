package ui

import (
	"path/filepath"
	"strings"

	"captor/internal/config"
	"captor/internal/session"
	"captor/internal/ui/cwidget"
	"captor/processing/captioner"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

var imageExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".bmp", ".tiff"}

const shortcutsText = `Ctrl+O  Open image
Ctrl+G  Generate caption
Ctrl+R  Read caption aloud
Ctrl+S  Export caption
Ctrl+H  Show this help
Ctrl+Q  Quit`

type CaptionApp struct {
	fyneApp fyne.App
	mainWin fyne.Window

	config     *config.Config
	controller *session.Controller

	statusLabel  *widget.Label
	progress     *widget.ProgressBarInfinite
	imageCanvas  *canvas.Image
	captionEntry *widget.Entry

	selectBtn   *widget.Button
	generateBtn *widget.Button
	speakBtn    *widget.Button
	exportBtn   *widget.Button

	shownImage string
}

func CreateApp(cfg *config.Config) *CaptionApp {
	a := app.New()
	w := a.NewWindow("Image Captioner")

	w.Resize(fyne.NewSize(900, 650))

	ca := &CaptionApp{
		fyneApp: a,
		mainWin: w,
		config:  cfg,
	}

	ca.statusLabel = widget.NewLabel("Starting...")
	ca.statusLabel.Wrapping = fyne.TextWrapWord

	ca.progress = widget.NewProgressBarInfinite()
	ca.progress.Hide()

	ca.imageCanvas = canvas.NewImageFromImage(nil)
	ca.imageCanvas.FillMode = canvas.ImageFillContain
	ca.imageCanvas.SetMinSize(fyne.NewSize(640, 400))

	ca.captionEntry = widget.NewMultiLineEntry()
	ca.captionEntry.Wrapping = fyne.TextWrapWord
	ca.captionEntry.SetPlaceHolder("The generated caption appears here")
	ca.captionEntry.Disable()

	ca.selectBtn = widget.NewButtonWithIcon("Select Image", theme.FolderOpenIcon(), ca.openImageDialog)
	ca.generateBtn = widget.NewButtonWithIcon("Generate Caption", theme.MediaPlayIcon(), func() {
		ca.controller.Request(session.GenerateCaption{})
	})
	ca.speakBtn = widget.NewButtonWithIcon("Read Aloud", theme.VolumeUpIcon(), func() {
		ca.controller.Request(session.ReadAloud{})
	})
	ca.exportBtn = widget.NewButtonWithIcon("Export Caption", theme.DocumentSaveIcon(), ca.exportDialog)

	ca.selectBtn.Disable()
	ca.generateBtn.Disable()
	ca.speakBtn.Disable()
	ca.exportBtn.Disable()

	return ca
}

// SetController must be called before Run and before the controller starts.
func (a *CaptionApp) SetController(c *session.Controller) {
	a.controller = c
}

func (a *CaptionApp) Run() {
	a.applyTheme()

	buttons := container.NewGridWithColumns(4,
		a.selectBtn,
		a.generateBtn,
		a.speakBtn,
		a.exportBtn,
	)

	bottom := container.NewVBox(
		widget.NewLabelWithStyle("Caption", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		a.captionEntry,
		buttons,
		a.progress,
		widget.NewSeparator(),
		a.statusLabel,
	)

	a.mainWin.SetContent(container.NewBorder(nil, bottom, nil, nil, a.imageCanvas))
	a.mainWin.SetMainMenu(a.buildMenu())

	a.setupShortcuts()

	a.mainWin.SetOnDropped(func(_ fyne.Position, uris []fyne.URI) {
		if len(uris) == 0 {
			return
		}

		path := uris[0].Path()
		if !isImagePath(path) {
			dialog.ShowInformation("Notice", "Please drop an image file.", a.mainWin)
			return
		}

		a.controller.Request(session.SelectImage{Path: path})
	})

	a.mainWin.SetCloseIntercept(func() {
		a.config.SaveByDefault()
		a.fyneApp.Quit()
	})

	a.mainWin.CenterOnScreen()
	a.mainWin.ShowAndRun()
}

// HandleNotification renders a controller notification. Called from the
// controller's run loop, so all widget work is marshalled onto the UI
// thread.
func (a *CaptionApp) HandleNotification(n session.Notification) {
	fyne.Do(func() {
		a.render(n)
	})
}

func (a *CaptionApp) render(n session.Notification) {
	a.statusLabel.SetText(n.Status)

	if n.Rejected {
		dialog.ShowInformation("Notice", n.Status, a.mainWin)
		return
	}

	if n.Err != nil {
		dialog.ShowError(n.Err, a.mainWin)
	}

	if n.State.Busy() {
		a.progress.Show()
		a.progress.Start()
	} else {
		a.progress.Stop()
		a.progress.Hide()
	}

	if n.Session.ImagePath != "" && n.Session.ImagePath != a.shownImage {
		a.shownImage = n.Session.ImagePath
		a.imageCanvas.File = n.Session.ImagePath
		a.imageCanvas.Refresh()
	}

	a.captionEntry.SetText(n.Session.Caption)

	setEnabled(a.selectBtn, n.State.CanSelectImage())
	setEnabled(a.generateBtn, n.State.CanGenerate())
	setEnabled(a.speakBtn, n.State.CanSpeak())
	setEnabled(a.exportBtn, n.State.CanExport())
}

func setEnabled(b *widget.Button, on bool) {
	if on {
		b.Enable()
	} else {
		b.Disable()
	}
}

func (a *CaptionApp) openImageDialog() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}

		path := reader.URI().Path()
		reader.Close()

		a.controller.Request(session.SelectImage{Path: path})
	}, a.mainWin)

	fd.SetFilter(storage.NewExtensionFileFilter(imageExtensions))
	fd.Show()
}

func (a *CaptionApp) exportDialog() {
	fd := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}

		path := writer.URI().Path()
		writer.Close()

		a.controller.Request(session.Export{Path: path})
	}, a.mainWin)

	fd.SetFileName(a.exportName())
	fd.SetFilter(storage.NewExtensionFileFilter([]string{".txt"}))
	fd.Show()
}

// exportName derives the suggested caption file name from the image name,
// e.g. photo.jpg becomes photo_caption.txt.
func (a *CaptionApp) exportName() string {
	base := filepath.Base(a.shownImage)
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	if stem == "" || stem == "." {
		return "caption.txt"
	}

	return stem + "_caption.txt"
}

func (a *CaptionApp) setupShortcuts() {
	bind := func(key fyne.KeyName, fn func()) {
		sc := &desktop.CustomShortcut{KeyName: key, Modifier: fyne.KeyModifierControl}
		a.mainWin.Canvas().AddShortcut(sc, func(fyne.Shortcut) { fn() })
	}

	bind(fyne.KeyO, a.openImageDialog)
	bind(fyne.KeyG, func() { a.controller.Request(session.GenerateCaption{}) })
	bind(fyne.KeyR, func() { a.controller.Request(session.ReadAloud{}) })
	bind(fyne.KeyS, a.exportDialog)
	bind(fyne.KeyH, a.showShortcuts)
	bind(fyne.KeyQ, a.fyneApp.Quit)
}

func (a *CaptionApp) buildMenu() *fyne.MainMenu {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Open Image...", a.openImageDialog),
		fyne.NewMenuItem("Export Caption...", a.exportDialog),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Settings...", a.showSettings),
	)

	highContrast := fyne.NewMenuItem("High Contrast", nil)
	highContrast.Checked = a.config.GetHighContrast()
	highContrast.Action = func() {
		on := !a.config.GetHighContrast()
		a.config.SetHighContrast(on)
		highContrast.Checked = on

		a.applyTheme()
		a.mainWin.MainMenu().Refresh()
	}

	viewMenu := fyne.NewMenu("View", highContrast)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("Keyboard Shortcuts", a.showShortcuts),
		fyne.NewMenuItem("About", a.showAbout),
	)

	return fyne.NewMainMenu(fileMenu, viewMenu, helpMenu)
}

func (a *CaptionApp) applyTheme() {
	if a.config.GetHighContrast() {
		a.fyneApp.Settings().SetTheme(newHighContrastTheme())
	} else {
		a.fyneApp.Settings().SetTheme(theme.DefaultTheme())
	}
}

func (a *CaptionApp) showSettings() {
	maxLen := cwidget.NewBoundedIntInput(
		"Max caption length",
		"Enter integer",
		a.config.GetMaxLength(),
		1, 200,
		func(i int) {
			a.config.SetMaxLength(i)
			a.pushCaptionOptions()
		},
	)

	beams := cwidget.NewBoundedIntInput(
		"Beam width",
		"Enter integer",
		a.config.GetBeamWidth(),
		1, 10,
		func(i int) {
			a.config.SetBeamWidth(i)
			a.pushCaptionOptions()
		},
	)

	rate := cwidget.NewBoundedIntInput(
		"Speech rate (words per minute)",
		"Enter integer",
		a.config.GetRate(),
		50, 400,
		func(i int) {
			a.config.SetRate(i)
		},
	)

	autoSpeak := widget.NewCheck("Read captions aloud automatically", func(on bool) {
		a.config.SetAutoSpeak(on)
		a.controller.Request(session.SetAutoSpeak{On: on})
	})
	autoSpeak.SetChecked(a.config.GetAutoSpeak())

	content := container.NewVBox(maxLen, beams, rate, autoSpeak)

	dialog.ShowCustom("Settings", "Close", content, a.mainWin)
}

func (a *CaptionApp) pushCaptionOptions() {
	a.controller.Request(session.SetCaptionOptions{Options: captioner.Options{
		MaxLength: a.config.GetMaxLength(),
		BeamWidth: a.config.GetBeamWidth(),
	}})
}

func (a *CaptionApp) showShortcuts() {
	dialog.ShowInformation("Keyboard Shortcuts", shortcutsText, a.mainWin)
}

func (a *CaptionApp) showAbout() {
	dialog.ShowInformation("About",
		"Image Captioner\n\nGenerates natural-language descriptions of images\nand reads them aloud.",
		a.mainWin)
}

func isImagePath(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range imageExtensions {
		if ext == e {
			return true
		}
	}
	return false
}
