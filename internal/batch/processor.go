// Package batch runs the normal repair over many OBJ files with a worker
// pool and collects per-file results.
package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"techart-tools/internal/geom"
	"techart-tools/internal/logger"
	"techart-tools/internal/obj"
)

// Config holds shared settings for a batch run.
type Config struct {
	OutputDir string // empty means repair files in place
	Workers   int
	DryRun    bool // classify and report without writing
}

// Result holds the outcome of processing one OBJ file.
type Result struct {
	Path    string `json:"path"`
	Objects int    `json:"objects"`
	Faces   int    `json:"faces"`
	Flipped int    `json:"flipped"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// Run processes all paths using a worker pool and returns one Result per
// input, in input order.
func Run(cfg Config, paths []string) []Result {
	total := len(paths)
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					rate := float64(p) / time.Since(start).Seconds()
					logger.Sugar.Infof("[%d/%d] %.1f files/sec", p, total, rate)
				}
			}
		}
	}()

	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}

	pathChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range pathChan {
				results[idx] = ProcessFile(cfg, paths[idx])
				processed.Add(1)
			}
		}()
	}

	for i := range paths {
		pathChan <- i
	}
	close(pathChan)

	wg.Wait()
	close(done)

	return results
}

// ProcessFile loads one OBJ file, flags flipped faces in every object,
// reverses their winding, and writes the repaired file unless DryRun is
// set. Logs one line per mesh object.
func ProcessFile(cfg Config, path string) Result {
	res := Result{Path: path}

	f, err := obj.Load(path)
	if err != nil {
		res.Error = err.Error()
		return res
	}
	res.Objects = len(f.Objects)
	res.Faces = f.FaceCount()

	for oi := range f.Objects {
		o := &f.Objects[oi]
		normals := geom.FaceNormals(f.Vertices, o.Faces)
		flagged := geom.Classify(f.Vertices, o.Faces, normals)
		res.Flipped += len(flagged)

		name := o.Name
		if name == "" {
			name = fmt.Sprintf("%s#%d", filepath.Base(path), oi)
		}
		if len(flagged) > 0 {
			if !cfg.DryRun {
				geom.ReverseFaces(o.Faces, flagged)
			}
			logger.Sugar.Infof("Fixed %d flipped normals in %s", len(flagged), name)
		} else {
			logger.Sugar.Infof("No flipped normals found in %s", name)
		}
	}

	if cfg.DryRun || res.Flipped == 0 {
		res.Success = true
		return res
	}

	outPath := path
	if cfg.OutputDir != "" {
		outPath = filepath.Join(cfg.OutputDir, filepath.Base(path))
		if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
			res.Error = err.Error()
			return res
		}
	}
	if err := obj.Save(outPath, f); err != nil {
		res.Error = err.Error()
		return res
	}

	res.Success = true
	return res
}
