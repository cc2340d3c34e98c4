package media

import (
	"bytes"
	"context"
	"time"

	"Peakfuel/internal/model"

	"github.com/disintegration/imaging"
	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

// squareTolerance is the relative width/height difference still treated as
// square; camera crops are rarely pixel-exact.
const squareTolerance = 0.08

const fetchTimeout = 5 * time.Second

var client = resty.New().SetTimeout(fetchTimeout)

// Classify buckets media dimensions into an aspect ratio class.
func Classify(width, height int) string {
	if width <= 0 || height <= 0 {
		return model.AspectRatioSquare
	}

	longer, shorter := width, height
	if height > width {
		longer, shorter = height, width
	}
	if float64(longer-shorter)/float64(longer) <= squareTolerance {
		return model.AspectRatioSquare
	}
	if width > height {
		return model.AspectRatioLandscape
	}
	return model.AspectRatioPortrait
}

// ClassifyRef fetches a media object and classifies it from its decoded
// bounds. Used when the upload did not report dimensions.
func ClassifyRef(ctx context.Context, mediaURL string) (string, error) {
	resp, err := client.R().SetContext(ctx).Get(mediaURL)
	if err != nil {
		return "", errors.Wrap(err, "fetch media")
	}
	if resp.IsError() {
		return "", errors.Errorf("fetch media: status %d", resp.StatusCode())
	}

	img, err := imaging.Decode(bytes.NewReader(resp.Body()))
	if err != nil {
		return "", errors.Wrap(err, "decode media")
	}

	bounds := img.Bounds()
	return Classify(bounds.Dx(), bounds.Dy()), nil
}
