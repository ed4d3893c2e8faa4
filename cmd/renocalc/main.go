// RenoCalc - Finishing Material Calculator
//
// A command line tool for estimating wallpaper, tile and laminate
// quantities and costs for renovation projects.
//
// Build:
//   go build -o renocalc ./cmd/renocalc
//
// Usage:
//   renocalc floor -length 4 -width 3 -material "Laminate Oak 33"
//   renocalc wall -perimeter 14 -height 2.7 -doors 1.6 -windows 2.1 -material "Vinyl wallpaper"
//   renocalc compare -area 23.17 -materials "Vinyl wallpaper,Paper wallpaper"
//   renocalc catalog list
//   renocalc catalog import -file materials.csv
//   renocalc export -format pdf -out report.pdf
//   renocalc project save -file kitchen.json -name "Kitchen" -materials "Laminate Oak 8mm" -length 4 -width 3
//   renocalc project load -file kitchen.json
//   renocalc backup export -out backup.json
//   renocalc backup import -file backup.json

package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/piwi3910/renocalc/internal/calc"
	"github.com/piwi3910/renocalc/internal/config"
	"github.com/piwi3910/renocalc/internal/export"
	"github.com/piwi3910/renocalc/internal/importer"
	"github.com/piwi3910/renocalc/internal/model"
	"github.com/piwi3910/renocalc/internal/project"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger, err := newLogger(cfg.Verbose)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	app := &cli{cfg: cfg, logger: logger}

	switch os.Args[1] {
	case "floor":
		err = app.runSurface(model.SurfaceFloor, os.Args[2:])
	case "wall":
		err = app.runSurface(model.SurfaceWall, os.Args[2:])
	case "compare":
		err = app.runCompare(os.Args[2:])
	case "catalog":
		err = app.runCatalog(os.Args[2:])
	case "export":
		err = app.runExport(os.Args[2:])
	case "plan":
		err = app.runPlan(os.Args[2:])
	case "project":
		err = app.runProject(os.Args[2:])
	case "backup":
		err = app.runBackup(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		logger.Error("command failed", zap.Error(err))
		os.Exit(1)
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: renocalc <floor|wall|compare|catalog|export|plan|project|backup> [flags]")
}

type cli struct {
	cfg    *config.Config
	logger *zap.Logger
}

func (c *cli) appConfig() (model.AppConfig, error) {
	path := c.cfg.ConfigPath
	if path == "" {
		path = project.DefaultConfigPath()
	}
	appCfg, err := project.LoadAppConfig(path)
	if err != nil {
		return model.AppConfig{}, err
	}
	// Environment overrides the stored settings.
	if c.cfg.Currency != "" {
		appCfg.Currency = c.cfg.Currency
	}
	if c.cfg.ExportDir != "" {
		appCfg.ExportDir = c.cfg.ExportDir
	}
	if c.cfg.ReservePercent != nil {
		appCfg.DefaultReservePercent = *c.cfg.ReservePercent
	}
	return appCfg, nil
}

func (c *cli) loadCatalog() (model.Catalog, error) {
	return project.LoadCatalog(project.DefaultCatalogPath())
}

func (c *cli) findMaterial(cat model.Catalog, name string) (model.Material, error) {
	if m := cat.FindByName(name); m != nil {
		return *m, nil
	}
	if m := cat.FindByID(name); m != nil {
		return *m, nil
	}
	return model.Material{}, fmt.Errorf("material %q not found in catalog (known: %s)",
		name, strings.Join(cat.Names(), ", "))
}

// runSurface handles both the floor and wall subcommands. The two share
// the reserve and material plumbing and differ only in geometry flags.
func (c *cli) runSurface(surface model.SurfaceType, args []string) error {
	fs := flag.NewFlagSet(string(surface), flag.ExitOnError)
	materialName := fs.String("material", "", "catalog material name or ID")
	length := fs.Float64("length", 0, "room length in meters (floor)")
	width := fs.Float64("width", 0, "room width in meters (floor)")
	perimeter := fs.Float64("perimeter", 0, "wall perimeter in meters (wall)")
	height := fs.Float64("height", 0, "wall height in meters (wall)")
	doors := fs.Float64("doors", 0, "total door area to subtract, m2")
	windows := fs.Float64("windows", 0, "total window area to subtract, m2")
	reserve := fs.Float64("reserve", -1, "reserve percent override")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *materialName == "" {
		return fmt.Errorf("-material is required")
	}

	appCfg, err := c.appConfig()
	if err != nil {
		return err
	}
	cat, err := c.loadCatalog()
	if err != nil {
		return err
	}
	mat, err := c.findMaterial(cat, *materialName)
	if err != nil {
		return err
	}

	rc := calc.NewRoomCalculator()
	pct := appCfg.DefaultReservePercent
	if *reserve >= 0 {
		pct = *reserve
	}
	if err := rc.SetReservePercent(pct); err != nil {
		return err
	}

	var room model.Room
	switch surface {
	case model.SurfaceFloor:
		room = model.Room{Length: *length, Width: *width, Surface: model.SurfaceFloor}
	case model.SurfaceWall:
		// The wall path accepts a measured perimeter directly; fold it
		// back into Length so CalculateForRoom sees a rectangle with
		// the same perimeter.
		room = model.Room{
			Length:     *perimeter / 2,
			Width:      0,
			Height:     *height,
			DoorArea:   *doors,
			WindowArea: *windows,
			Surface:    model.SurfaceWall,
		}
	}

	result, err := rc.CalculateForRoom(mat, room)
	if err != nil {
		return err
	}

	c.logger.Info("calculation complete",
		zap.String("material", mat.Name),
		zap.Float64("area", result.Area),
		zap.Int("units", result.UnitsNeeded))
	printResult(result, appCfg.Currency)
	return nil
}

func (c *cli) runCompare(args []string) error {
	fs := flag.NewFlagSet("compare", flag.ExitOnError)
	area := fs.Float64("area", 0, "surface area in m2")
	names := fs.String("materials", "", "comma separated catalog material names")
	reserve := fs.Float64("reserve", -1, "reserve percent override")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *names == "" {
		return fmt.Errorf("-materials is required")
	}

	appCfg, err := c.appConfig()
	if err != nil {
		return err
	}
	cat, err := c.loadCatalog()
	if err != nil {
		return err
	}

	var candidates []model.Material
	for _, name := range strings.Split(*names, ",") {
		mat, err := c.findMaterial(cat, strings.TrimSpace(name))
		if err != nil {
			return err
		}
		candidates = append(candidates, mat)
	}

	mc := calc.NewMaterialCalculator()
	pct := appCfg.DefaultReservePercent
	if *reserve >= 0 {
		pct = *reserve
	}
	if err := mc.SetReservePercent(pct); err != nil {
		return err
	}

	ranked, err := mc.CompareMaterials(candidates, *area)
	if err != nil {
		return err
	}

	fmt.Printf("Comparison for %.2f m2 (reserve %.0f%%), cheapest first:\n\n", *area, pct)
	for i, r := range ranked {
		fmt.Printf("%d. %-30s %4d units  %10.2f %s\n",
			i+1, r.Material.Name, r.UnitsNeeded, r.TotalCost, appCfg.Currency)
	}
	return nil
}

func (c *cli) runCatalog(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: renocalc catalog <list|import> [flags]")
	}

	switch args[0] {
	case "list":
		cat, err := c.loadCatalog()
		if err != nil {
			return err
		}
		for _, m := range cat.Materials {
			fmt.Println(m.String())
		}
		return nil
	case "import":
		fs := flag.NewFlagSet("catalog import", flag.ExitOnError)
		file := fs.String("file", "", "CSV or Excel file with materials")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		if *file == "" {
			return fmt.Errorf("-file is required")
		}
		return c.importCatalog(*file)
	default:
		return fmt.Errorf("unknown catalog command %q", args[0])
	}
}

func (c *cli) importCatalog(path string) error {
	var res importer.ImportResult
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		res = importer.ImportExcel(path)
	default:
		res = importer.ImportCSV(path)
	}

	for _, w := range res.Warnings {
		c.logger.Warn("import warning", zap.String("detail", w))
	}
	for _, e := range res.Errors {
		c.logger.Error("import error", zap.String("detail", e))
	}
	if len(res.Materials) == 0 {
		return fmt.Errorf("no materials imported from %s", path)
	}

	catPath := project.DefaultCatalogPath()
	cat, err := project.LoadCatalog(catPath)
	if err != nil {
		return err
	}
	for _, m := range res.Materials {
		cat.Add(m)
	}
	if err := project.SaveCatalog(catPath, cat); err != nil {
		return err
	}

	c.logger.Info("catalog updated",
		zap.Int("imported", len(res.Materials)),
		zap.Int("total", len(cat.Materials)))
	fmt.Printf("Imported %d materials (%d errors, %d warnings)\n",
		len(res.Materials), len(res.Errors), len(res.Warnings))
	return nil
}

// runExport recalculates the requested materials and writes the report in
// the chosen format. Results come from fresh calculations rather than a
// stored session, so the flags mirror the compare subcommand.
func (c *cli) runExport(args []string) error {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	area := fs.Float64("area", 0, "surface area in m2")
	names := fs.String("materials", "", "comma separated catalog material names")
	format := fs.String("format", "pdf", "report format: pdf, xlsx or labels")
	out := fs.String("out", "", "output file path (default: export dir with timestamped name)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *names == "" {
		return fmt.Errorf("-materials is required")
	}

	appCfg, err := c.appConfig()
	if err != nil {
		return err
	}
	cat, err := c.loadCatalog()
	if err != nil {
		return err
	}

	mc := calc.NewMaterialCalculator()
	if err := mc.SetReservePercent(appCfg.DefaultReservePercent); err != nil {
		return err
	}
	for _, name := range strings.Split(*names, ",") {
		mat, err := c.findMaterial(cat, strings.TrimSpace(name))
		if err != nil {
			return err
		}
		if _, err := mc.Calculate(mat, *area); err != nil {
			return err
		}
	}
	results := mc.History()

	ext := map[string]string{"pdf": "pdf", "xlsx": "xlsx", "labels": "pdf"}[*format]
	if ext == "" {
		return fmt.Errorf("unknown format %q", *format)
	}
	path := *out
	if path == "" {
		path = filepath.Join(appCfg.ExportDir, export.DefaultFilename(ext))
	}

	switch *format {
	case "pdf":
		err = export.ExportPDF(path, results, appCfg.Currency)
	case "xlsx":
		err = export.ExportExcel(path, results, appCfg.Currency)
	case "labels":
		err = export.ExportLabels(path, results, appCfg.Currency)
	}
	if err != nil {
		return err
	}

	appCfg.AddRecentReport(path)
	cfgPath := c.cfg.ConfigPath
	if cfgPath == "" {
		cfgPath = project.DefaultConfigPath()
	}
	if err := project.SaveAppConfig(cfgPath, appCfg); err != nil {
		c.logger.Warn("could not record recent report", zap.Error(err))
	}

	c.logger.Info("report written", zap.String("path", path))
	fmt.Println(path)
	return nil
}

func (c *cli) runPlan(args []string) error {
	fs := flag.NewFlagSet("plan", flag.ExitOnError)
	file := fs.String("file", "", "DXF floor plan")
	materialName := fs.String("material", "", "catalog material for flooring estimate")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *file == "" {
		return fmt.Errorf("-file is required")
	}

	res := importer.ImportFloorPlan(*file)
	for _, w := range res.Warnings {
		c.logger.Warn("plan warning", zap.String("detail", w))
	}
	if len(res.Plans) == 0 {
		return fmt.Errorf("no rooms found in %s: %s", *file, strings.Join(res.Errors, "; "))
	}

	appCfg, err := c.appConfig()
	if err != nil {
		return err
	}

	var mat model.Material
	haveMaterial := *materialName != ""
	if haveMaterial {
		cat, err := c.loadCatalog()
		if err != nil {
			return err
		}
		mat, err = c.findMaterial(cat, *materialName)
		if err != nil {
			return err
		}
	}

	mc := calc.NewMaterialCalculator()
	if err := mc.SetReservePercent(appCfg.DefaultReservePercent); err != nil {
		return err
	}

	for _, plan := range res.Plans {
		fmt.Printf("%s: %.2f m2 (perimeter %.2f m)\n", plan.Label, plan.Area, plan.Perimeter)
		if !haveMaterial {
			continue
		}
		r, err := mc.Calculate(mat, plan.Area)
		if err != nil {
			c.logger.Warn("skipping room", zap.String("room", plan.Label), zap.Error(err))
			continue
		}
		fmt.Printf("  %s: %d units, %.2f %s\n", mat.Name, r.UnitsNeeded, r.TotalCost, appCfg.Currency)
	}
	return nil
}

func (c *cli) runProject(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: renocalc project <save|load> [flags]")
	}

	switch args[0] {
	case "save":
		return c.runProjectSave(args[1:])
	case "load":
		return c.runProjectLoad(args[1:])
	default:
		return fmt.Errorf("unknown project command %q", args[0])
	}
}

func (c *cli) runProjectSave(args []string) error {
	fs := flag.NewFlagSet("project save", flag.ExitOnError)
	file := fs.String("file", "", "project file to write")
	name := fs.String("name", "", "project name")
	names := fs.String("materials", "", "comma separated catalog material names")
	length := fs.Float64("length", 0, "room length in meters")
	width := fs.Float64("width", 0, "room width in meters")
	height := fs.Float64("height", 0, "wall height in meters (makes the room a wall surface)")
	doors := fs.Float64("doors", 0, "total door area to subtract, m2")
	windows := fs.Float64("windows", 0, "total window area to subtract, m2")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *file == "" {
		return fmt.Errorf("-file is required")
	}

	p := model.NewProject(*name)

	if *names != "" {
		cat, err := c.loadCatalog()
		if err != nil {
			return err
		}
		for _, n := range strings.Split(*names, ",") {
			mat, err := c.findMaterial(cat, strings.TrimSpace(n))
			if err != nil {
				return err
			}
			p.Materials = append(p.Materials, mat)
		}
	}

	if *length > 0 && *width > 0 {
		room := model.Room{
			Length:  *length,
			Width:   *width,
			Surface: model.SurfaceFloor,
		}
		if *height > 0 {
			room.Height = *height
			room.DoorArea = *doors
			room.WindowArea = *windows
			room.Surface = model.SurfaceWall
		}
		p.Rooms = append(p.Rooms, room)
	}

	if err := project.SaveProject(*file, p); err != nil {
		return err
	}

	c.logger.Info("project saved",
		zap.String("path", *file),
		zap.Int("rooms", len(p.Rooms)),
		zap.Int("materials", len(p.Materials)))
	fmt.Println(*file)
	return nil
}

// runProjectLoad prints the saved project and re-estimates every room with
// every stored material.
func (c *cli) runProjectLoad(args []string) error {
	fs := flag.NewFlagSet("project load", flag.ExitOnError)
	file := fs.String("file", "", "project file to read")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *file == "" {
		return fmt.Errorf("-file is required")
	}

	p, err := project.LoadProject(*file)
	if err != nil {
		return err
	}

	appCfg, err := c.appConfig()
	if err != nil {
		return err
	}

	fmt.Printf("Project: %s (%d rooms, %d materials)\n", p.Name, len(p.Rooms), len(p.Materials))

	rc := calc.NewRoomCalculator()
	if err := rc.SetReservePercent(appCfg.DefaultReservePercent); err != nil {
		return err
	}
	for i, room := range p.Rooms {
		fmt.Printf("Room %d (%s, %.2f x %.2f m):\n", i+1, room.Surface, room.Length, room.Width)
		for _, mat := range p.Materials {
			r, err := rc.CalculateForRoom(mat, room)
			if err != nil {
				c.logger.Warn("skipping material for room",
					zap.String("material", mat.Name), zap.Error(err))
				continue
			}
			fmt.Printf("  %-30s %4d units  %10.2f %s\n",
				mat.Name, r.UnitsNeeded, r.TotalCost, appCfg.Currency)
		}
	}
	return nil
}

func (c *cli) runBackup(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: renocalc backup <export|import> [flags]")
	}

	switch args[0] {
	case "export":
		fs := flag.NewFlagSet("backup export", flag.ExitOnError)
		out := fs.String("out", "", "backup file to write")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}

		appCfg, err := c.appConfig()
		if err != nil {
			return err
		}
		cat, err := c.loadCatalog()
		if err != nil {
			return err
		}

		path := *out
		if path == "" {
			path = filepath.Join(appCfg.ExportDir, "renocalc_backup.json")
		}
		if err := project.ExportAllData(path, appCfg, cat); err != nil {
			return err
		}
		c.logger.Info("backup written", zap.String("path", path))
		fmt.Println(path)
		return nil

	case "import":
		fs := flag.NewFlagSet("backup import", flag.ExitOnError)
		file := fs.String("file", "", "backup file to read")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		if *file == "" {
			return fmt.Errorf("-file is required")
		}

		backup, err := project.ImportAllData(*file)
		if err != nil {
			return err
		}

		cfgPath := c.cfg.ConfigPath
		if cfgPath == "" {
			cfgPath = project.DefaultConfigPath()
		}
		if err := project.SaveAppConfig(cfgPath, backup.Config); err != nil {
			return err
		}
		if err := project.SaveCatalog(project.DefaultCatalogPath(), backup.Catalog); err != nil {
			return err
		}

		c.logger.Info("backup restored",
			zap.String("version", backup.Version),
			zap.Int("materials", len(backup.Catalog.Materials)))
		fmt.Printf("Restored %d catalog materials\n", len(backup.Catalog.Materials))
		return nil

	default:
		return fmt.Errorf("unknown backup command %q", args[0])
	}
}

func printResult(r model.CalculationResult, currency string) {
	fmt.Printf("Material: %s\n", r.Material.Name)
	fmt.Printf("Area:     %.2f m2 (+%.0f%% reserve = %.2f m2)\n",
		r.Area, r.ReservePercent, r.AreaWithReserve())
	fmt.Printf("Units:    %d\n", r.UnitsNeeded)
	fmt.Printf("Cost:     %.2f %s\n", r.TotalCost, currency)
}
