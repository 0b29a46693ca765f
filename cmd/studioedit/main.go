package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"github.com/goliatone/go-studioedit/internal/memwidget"
	"github.com/goliatone/go-studioedit/pkg/captions"
	"github.com/goliatone/go-studioedit/pkg/host"
	"github.com/goliatone/go-studioedit/pkg/prompt"
	"github.com/goliatone/go-studioedit/pkg/registry"
	"github.com/goliatone/go-studioedit/pkg/studio"
	"github.com/goliatone/go-studioedit/pkg/surface"
)

func main() {
	configPath := flag.String("config", "", "YAML config file")
	base := flag.String("base", "", "studio base URL, e.g. https://studio.example.com")
	usage := flag.String("usage", "", "usage id of the block being edited")
	surfacePath := flag.String("surface", "", "surface descriptor path or URL (.json, .yaml)")
	openapiPath := flag.String("openapi", "", "OpenAPI document path or URL describing the block settings")
	schema := flag.String("schema", "", "component schema name inside -openapi")
	videoPlayer := flag.Bool("video-player", false, "edit the built-in video player surface")
	locale := flag.String("locale", "", "locale for user-facing messages")
	stream := flag.String("stream", "", "select this streaming URL before editing")
	asset := flag.String("asset", "", "asset id used to fetch captions for -stream")
	captionLang := flag.String("captions-lang", "", "check every fetched caption with this language code")
	cancel := flag.Bool("cancel", false, "discard edits instead of prompting")
	yes := flag.Bool("yes", false, "skip prompts and save the surface as loaded")
	debug := flag.Bool("debug", false, "dump the payload before saving")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	cfg.override(*base, *usage, *surfacePath, *openapiPath, *schema, *locale)

	ctx := context.Background()

	desc, err := loadDescriptor(ctx, cfg, *videoPlayer)
	if err != nil {
		log.Fatalf("load surface: %v", err)
	}
	reg, err := registry.Discover(desc, memwidget.Factory{})
	if err != nil {
		log.Fatalf("discover fields: %v", err)
	}

	recorder := host.NewRecorder(host.NotifierFunc(logSignal))
	runtime, err := host.NewHandlerRuntime(cfg.Base, cfg.Usage, host.WithNotifier(recorder))
	if err != nil {
		log.Fatalf("host runtime: %v", err)
	}

	opts := []studio.Option{
		studio.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
		studio.WithLogger(studio.LoggerFunc(logSave)),
		studio.WithAllowOverlappingSaves(cfg.AllowOverlap),
	}
	if len(cfg.Messages) > 0 {
		opts = append(opts, studio.WithTranslator(cfg.Messages, cfg.Locale))
	}
	editor, err := studio.New(reg, runtime, opts...)
	if err != nil {
		log.Fatalf("editor: %v", err)
	}

	if strings.TrimSpace(*stream) != "" {
		if err := selectStream(ctx, editor, *stream, *asset, *captionLang); err != nil {
			log.Fatalf("select stream: %v", err)
		}
	}

	if *cancel {
		editor.Cancel(ctx)
		return
	}

	if !*yes {
		decision, err := interact(ctx, reg, desc)
		if err != nil {
			if errors.Is(err, prompt.ErrAborted) {
				editor.Cancel(ctx)
				return
			}
			log.Fatalf("edit: %v", err)
		}
		if decision == prompt.DecisionCancel {
			editor.Cancel(ctx)
			return
		}
	}

	if *debug {
		payload, err := studio.Diff(reg)
		spew.Dump(payload, err)
	}

	sub, err := editor.Save(ctx)
	if err != nil {
		log.Fatalf("save: %v", err)
	}
	if err := sub.Wait(ctx); err != nil {
		os.Exit(1)
	}
	fmt.Printf("Saved %d field(s), reset %d\n", sub.Overridden, sub.Reset)
}

func loadDescriptor(ctx context.Context, cfg config, videoPlayer bool) (surface.Descriptor, error) {
	if videoPlayer {
		return surface.VideoPlayerDescriptor(), nil
	}
	fetcher := surface.NewFetcher(
		surface.WithHTTPClient(&http.Client{}),
		surface.WithRequestTimeout(cfg.Timeout),
	)
	switch {
	case cfg.OpenAPI != "":
		src, err := surface.ParseSource(cfg.OpenAPI)
		if err != nil {
			return surface.Descriptor{}, err
		}
		return fetcher.LoadOpenAPI(ctx, src, cfg.Schema)
	case cfg.Surface != "":
		src, err := surface.ParseSource(cfg.Surface)
		if err != nil {
			return surface.Descriptor{}, err
		}
		return fetcher.Load(ctx, src)
	default:
		return surface.Descriptor{}, errors.New("one of -surface, -openapi or -video-player is required")
	}
}

func interact(ctx context.Context, reg *registry.Registry, desc surface.Descriptor) (prompt.Decision, error) {
	session, err := prompt.NewSession(prompt.NewSurveyDriver(), prompt.WithDescriptor(desc))
	if err != nil {
		return prompt.DecisionCancel, err
	}
	if err := session.Edit(ctx, reg); err != nil {
		return prompt.DecisionCancel, err
	}
	return session.Decide(ctx)
}

func selectStream(ctx context.Context, editor *studio.Editor, url, assetID, lang string) error {
	req, err := editor.SelectStream(ctx, studio.StreamOption{URL: url, AssetID: assetID})
	if err != nil {
		return err
	}
	result, err := req.Wait(ctx)
	if err != nil {
		// No asset means nothing to fetch; fetch failures were already signalled.
		return nil
	}
	if result.Message != "" {
		fmt.Println(result.Message)
		return nil
	}

	choices := make([]captions.Choice, 0, len(result.Assets))
	for _, asset := range result.Assets {
		fmt.Printf("caption: %s (%s)\n", asset.NameFile, asset.DownloadURL)
		choices = append(choices, captions.Choice{
			Asset:    asset,
			Checked:  lang != "",
			Language: captions.Language{Code: lang, Label: lang},
		})
	}
	if lang == "" {
		return nil
	}
	return editor.ApplyCaptions(choices)
}

func logSignal(_ context.Context, signal host.Signal, payload any) {
	switch notice := payload.(type) {
	case host.SaveNotice:
		log.Printf("signal %s %s %s", signal, notice.State, notice.Message)
	case host.ErrorNotice:
		log.Printf("signal %s: %s: %s", signal, notice.Title, notice.Message)
	default:
		log.Printf("signal %s", signal)
	}
}

func logSave(event studio.SaveLogEvent) {
	if event.Err != nil {
		log.Printf("save %s %s status=%d overridden=%d reset=%d in %s: %v",
			event.AttemptID, event.Outcome, event.Status, event.Overridden, event.Reset, event.Duration, event.Err)
		return
	}
	log.Printf("save %s %s status=%d overridden=%d reset=%d in %s",
		event.AttemptID, event.Outcome, event.Status, event.Overridden, event.Reset, event.Duration)
}
