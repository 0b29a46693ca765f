package captions

import (
	"strings"

	"github.com/tidwall/sjson"
)

// KindSubtitles is the track kind written for every selected caption.
const KindSubtitles = "subtitles"

// Language is a language choice for one caption asset.
type Language struct {
	Code  string
	Label string
}

// Choice is the author's pick for one listed asset.
type Choice struct {
	Asset    Asset
	Checked  bool
	Language Language
}

// Track is one entry of the captions field value.
type Track struct {
	Kind    string `json:"kind"`
	Src     string `json:"src"`
	SrcLang string `json:"srclang"`
	Label   string `json:"label"`
}

// Tracks returns the checked choices as tracks, in display order.
func Tracks(choices []Choice) []Track {
	tracks := make([]Track, 0, len(choices))
	for _, choice := range choices {
		if !choice.Checked {
			continue
		}
		tracks = append(tracks, Track{
			Kind:    KindSubtitles,
			Src:     choice.Asset.DownloadURL,
			SrcLang: strings.TrimSpace(choice.Language.Code),
			Label:   strings.TrimSpace(choice.Language.Label),
		})
	}
	return tracks
}

// FieldValue encodes the checked choices as the JSON text the captions field
// widget holds. No checked choices encode as "[]".
func FieldValue(choices []Choice) (string, error) {
	doc := "[]"
	for _, track := range Tracks(choices) {
		var err error
		doc, err = sjson.Set(doc, "-1", track)
		if err != nil {
			return "", err
		}
	}
	return doc, nil
}
