package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/klauspost/compress/gzip"
	"github.com/spf13/cobra"

	"github.com/samirrijal/isonwater/internal/adapters/landindex"
	"github.com/samirrijal/isonwater/internal/core/domain"
)

const defaultDatasetURL = "https://github.com/simonepri/geo-maps/releases/download/v0.6.0/earth-lands-1m.geo.json"

func newFetchCmd(opts *options) *cobra.Command {
	var url string

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Download the land dataset to --dataset, gzipped when the path ends in .gz",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Minute)
			defer cancel()

			stats, err := fetchDataset(ctx, url, opts.dataset)
			if err != nil {
				return err
			}
			return printJSON(cmd, stats)
		},
	}
	cmd.Flags().StringVar(&url, "url", defaultDatasetURL, "GeoJSON land dataset to download")

	return cmd
}

// fetchDataset downloads url into a temp file next to dst and only renames it
// into place once it decodes as a land index.
func fetchDataset(ctx context.Context, url, dst string) (domain.LandStats, error) {
	var stats domain.LandStats

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return stats, fmt.Errorf("build request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return stats, fmt.Errorf("download %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return stats, fmt.Errorf("download %s: unexpected status %s", url, resp.Status)
	}

	dir := filepath.Dir(dst)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return stats, fmt.Errorf("create %s: %w", dir, err)
	}

	// The temp name keeps dst's extension so Load picks the same decoder.
	tmp, err := os.CreateTemp(dir, ".fetch-*-"+filepath.Base(dst))
	if err != nil {
		return stats, fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if err := writeDataset(tmp, resp.Body, strings.HasSuffix(dst, ".gz")); err != nil {
		tmp.Close()
		return stats, fmt.Errorf("write %s: %w", dst, err)
	}
	if err := tmp.Close(); err != nil {
		return stats, fmt.Errorf("write %s: %w", dst, err)
	}

	land, err := landindex.Load(tmpName)
	if err != nil {
		return stats, fmt.Errorf("downloaded dataset is unusable: %w", err)
	}
	if err := os.Rename(tmpName, dst); err != nil {
		return stats, fmt.Errorf("install %s: %w", dst, err)
	}

	stats = land.Stats()
	stats.Source = dst
	return stats, nil
}

func writeDataset(w io.Writer, r io.Reader, compress bool) error {
	if !compress {
		_, err := io.Copy(w, r)
		return err
	}

	zw := gzip.NewWriter(w)
	if _, err := io.Copy(zw, r); err != nil {
		zw.Close()
		return err
	}
	return zw.Close()
}
