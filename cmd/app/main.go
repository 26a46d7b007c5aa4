package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/akyairhashvil/gantterm/internal/compose"
	"github.com/akyairhashvil/gantterm/internal/config"
	"github.com/akyairhashvil/gantterm/internal/database"
	"github.com/akyairhashvil/gantterm/internal/export"
	"github.com/akyairhashvil/gantterm/internal/layout"
	"github.com/akyairhashvil/gantterm/internal/theme"
	"github.com/akyairhashvil/gantterm/internal/timeline"
	"github.com/akyairhashvil/gantterm/internal/tui"
	"github.com/akyairhashvil/gantterm/internal/util"
)

func main() {
	dbFlag := flag.String("db", "", "database path (defaults to the user data dir)")
	themeFlag := flag.String("theme", "", "theme preset name")
	svgOut := flag.String("svg", "", "render the chart to an SVG file and exit")
	pdfOut := flag.String("pdf", "", "render the chart to a PDF file and exit")
	flag.Parse()

	ctx := context.Background()

	dbPath := *dbFlag
	if dbPath == "" {
		root := util.DataDir(config.AppName)
		_ = os.MkdirAll(root, 0o755)
		dbPath = filepath.Join(root, config.DBFileName)
	}

	db, err := database.Open(ctx, dbPath)
	if err != nil {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	projectID, err := db.Seed(ctx)
	if err != nil {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}

	if *themeFlag != "" {
		if err := db.SetSetting(ctx, config.SettingTheme, *themeFlag); err != nil {
			util.LogError("set theme", err)
		}
	}

	if *svgOut != "" || *pdfOut != "" {
		if err := renderStatic(ctx, db, projectID, *svgOut, *pdfOut); err != nil {
			fmt.Printf("Alas, there's been an error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	m := tui.NewGanttModel(ctx, db, projectID)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
}

// renderStatic composes the chart once, without the interactive loop, and
// writes the requested documents.
func renderStatic(ctx context.Context, db *database.Database, projectID int64, svgPath, pdfPath string) error {
	snap, err := db.LoadSnapshot(ctx, projectID)
	if err != nil {
		return err
	}
	collapsed, err := db.CollapsedDeliverables(ctx, projectID)
	if err != nil {
		return err
	}

	th := theme.Resolve(db.GetSetting(ctx, config.SettingTheme, "default"))
	g := timeline.ParseGranularity(db.GetSetting(ctx, config.SettingZoom, "week"))
	window := timeline.DefaultRange(snap.Project, g)
	lay := layout.Build(snap.Deliverables, collapsed, th.Palette)

	scene := compose.BuildScene(snap, lay, compose.Options{
		Range:        window,
		PixelsPerDay: timeline.PixelsPerDay(1400, window.Start, window.End),
		Granularity:  g,
		Theme:        th,
		ShowWeekends: th.ShowWeekends,
		ShowToday:    th.ShowToday,
		ShowDayLines: th.ShowDayLines,
	})

	if svgPath != "" {
		if err := export.SaveSVG(svgPath, scene, th); err != nil {
			return err
		}
		fmt.Println("wrote", svgPath)
	}
	if pdfPath != "" {
		if err := export.WritePDF(pdfPath, snap.Project.Name, scene, th); err != nil {
			return err
		}
		fmt.Println("wrote", pdfPath)
	}
	return nil
}
