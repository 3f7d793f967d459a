// Command uicap captures a UI hierarchy snapshot and a screenshot for
// later comparison with uidiff. It only writes files; the diff engine
// consumes them independently.
//
// Usage:
//
//	uicap -name login_screen                  # Android device via adb
//	uicap -name login_screen -serial SERIAL   # a specific device
//	uicap -name home -url https://example.com # web DOM via headless Chrome
//
// The hierarchy lands in xmls/<name>.xml (or .html for web captures) and
// the screenshot in screenshots/<name>.png.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/stealth"

	"github.com/hazyhaar/uidiff/idgen"
)

const (
	xmlDir        = "xmls"
	screenshotDir = "screenshots"
	deviceDump    = "/sdcard/window_dump.xml"
)

func main() {
	name := flag.String("name", "", "base name for the output files (default: timestamped ID)")
	serial := flag.String("serial", "", "adb device serial (default: the only connected device)")
	pageURL := flag.String("url", "", "capture a web page instead of an Android device")
	logLevel := flag.String("log-level", "info", "log level: debug, info, warn, error")
	flag.Parse()

	var level slog.Level
	switch *logLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	baseName := *name
	if baseName == "" {
		baseName = idgen.Timestamped(idgen.Default)()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := run(ctx, logger, baseName, *serial, *pageURL); err != nil {
		logger.Error("uicap: fatal", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, name, serial, pageURL string) error {
	for _, dir := range []string{xmlDir, screenshotDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	if pageURL != "" {
		return captureWeb(ctx, logger, name, pageURL)
	}
	return captureDevice(ctx, logger, name, serial)
}

// captureDevice drives adb: uiautomator writes the hierarchy on the
// device, then the dump and a screenshot are pulled to the host.
func captureDevice(ctx context.Context, logger *slog.Logger, name, serial string) error {
	xmlPath := filepath.Join(xmlDir, name+".xml")
	pngPath := filepath.Join(screenshotDir, name+".png")

	if out, err := adb(ctx, serial, "shell", "uiautomator", "dump", deviceDump); err != nil {
		return fmt.Errorf("uiautomator dump: %w: %s", err, out)
	}
	if out, err := adb(ctx, serial, "pull", deviceDump, xmlPath); err != nil {
		return fmt.Errorf("pull dump: %w: %s", err, out)
	}

	png, err := adb(ctx, serial, "exec-out", "screencap", "-p")
	if err != nil {
		return fmt.Errorf("screencap: %w", err)
	}
	if err := os.WriteFile(pngPath, png, 0o644); err != nil {
		return fmt.Errorf("write screenshot: %w", err)
	}

	logger.Info("uicap: device captured", "xml", xmlPath, "screenshot", pngPath)
	fmt.Printf("hierarchy saved to %s\n", xmlPath)
	fmt.Printf("screenshot saved to %s\n", pngPath)
	return nil
}

func adb(ctx context.Context, serial string, args ...string) ([]byte, error) {
	if serial != "" {
		args = append([]string{"-s", serial}, args...)
	}
	return exec.CommandContext(ctx, "adb", args...).Output()
}

// captureWeb serialises a page's DOM and screenshot through headless
// Chrome. The HTML file goes through the element package's HTML adapter
// on the diff side.
func captureWeb(ctx context.Context, logger *slog.Logger, name, pageURL string) error {
	htmlPath := filepath.Join(xmlDir, name+".html")
	pngPath := filepath.Join(screenshotDir, name+".png")

	browser := rod.New().Context(ctx)
	if err := browser.Connect(); err != nil {
		return fmt.Errorf("browser connect: %w", err)
	}
	defer browser.Close()

	page, err := stealth.Page(browser)
	if err != nil {
		return fmt.Errorf("create page: %w", err)
	}
	defer page.Close()

	if err := page.Navigate(pageURL); err != nil {
		return fmt.Errorf("navigate %s: %w", pageURL, err)
	}
	if err := page.WaitLoad(); err != nil {
		logger.Warn("uicap: wait load timeout", "url", pageURL, "error", err)
	}

	res, err := page.Eval(`() => document.documentElement.outerHTML`)
	if err != nil {
		return fmt.Errorf("serialise DOM: %w", err)
	}
	if err := os.WriteFile(htmlPath, []byte(res.Value.Str()), 0o644); err != nil {
		return fmt.Errorf("write DOM: %w", err)
	}

	png, err := page.Screenshot(true, nil)
	if err != nil {
		return fmt.Errorf("screenshot: %w", err)
	}
	if err := os.WriteFile(pngPath, png, 0o644); err != nil {
		return fmt.Errorf("write screenshot: %w", err)
	}

	logger.Info("uicap: page captured", "url", pageURL, "html", htmlPath, "screenshot", pngPath)
	fmt.Printf("hierarchy saved to %s\n", htmlPath)
	fmt.Printf("screenshot saved to %s\n", pngPath)
	return nil
}
