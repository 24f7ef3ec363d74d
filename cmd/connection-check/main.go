// connection-check — автономная проверка внешних зависимостей:
// по строке "<Name>: SUCCESS|FAIL (<detail>)" на зависимость и
// итоговая строка с кодом выхода 0/1.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/pribylovaa/omni-scout/internal/arxiv"
	"github.com/pribylovaa/omni-scout/internal/config"
	"github.com/pribylovaa/omni-scout/internal/llm"
	"github.com/pribylovaa/omni-scout/internal/youtube"
)

type check struct {
	name string
	run  func(ctx context.Context) (bool, string)
}

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "path to config file")
	flag.Parse()

	cfg := config.MustLoad(configPath)

	client := &http.Client{Timeout: cfg.Timeouts.Check}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeouts.Check)
	defer cancel()

	checks := []check{
		{name: "ArXiv", run: func(ctx context.Context) (bool, string) {
			url := arxiv.BuildQueryURL(cfg.Scout.ArxivEndpoint, []string{"test"}, 1,
				arxiv.SortBySubmittedDate, arxiv.SortOrderDescending)
			return checkHTTP(ctx, client, url)
		}},
		{name: "YouTube", run: func(ctx context.Context) (bool, string) {
			if cfg.YouTube.APIKey == "" {
				return false, "missing YOUTUBE_API_KEY"
			}
			url := youtube.BuildSearchURL(cfg.YouTube.Endpoint, "test", cfg.YouTube.APIKey, 1)
			return checkHTTP(ctx, client, url)
		}},
		{name: "Gemini", run: func(ctx context.Context) (bool, string) {
			if cfg.Gemini.APIKey == "" {
				return false, "missing GEMINI_API_KEY"
			}

			gen := llm.NewGemini(client, cfg.Gemini.Endpoint, cfg.Gemini.APIKey,
				cfg.Gemini.Model, cfg.Gemini.FallbackModel)

			result, err := gen.Generate(ctx, "ping")
			if err != nil {
				return false, err.Error()
			}

			return true, fmt.Sprintf("model %s", result.Model)
		}},
	}

	allOK := true
	for _, c := range checks {
		ok, detail := c.run(ctx)
		status := "SUCCESS"
		if !ok {
			status = "FAIL"
			allOK = false
		}
		fmt.Printf("%s: %s (%s)\n", c.name, status, detail)
	}

	if allOK {
		fmt.Println("ALL CONNECTIONS: SUCCESS")
		os.Exit(0)
	}

	fmt.Println("One or more connections failed.")
	os.Exit(1)
}

// checkHTTP выполняет GET и трактует любой 2xx как успех.
func checkHTTP(ctx context.Context, client *http.Client, url string) (bool, string) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, err.Error()
	}

	resp, err := client.Do(req)
	if err != nil {
		return false, err.Error()
	}
	defer resp.Body.Close()

	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return false, fmt.Sprintf("HTTP %d", resp.StatusCode)
	}

	return true, fmt.Sprintf("HTTP %d", resp.StatusCode)
}
