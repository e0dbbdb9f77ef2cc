package service

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"qrisgw/api/internal/infra/cache"
	"qrisgw/api/internal/infra/storage"
	"qrisgw/pkg/utils"

	"github.com/yeqown/go-qrcode/v2"

	"github.com/yeqown/go-qrcode/writer/standard"
)

type QrCodesService struct {
	storage *storage.Storage
	cache   *cache.Cache
}

func NewQrCodesService(storage *storage.Storage, cache *cache.Cache) *QrCodesService {
	return &QrCodesService{storage: storage, cache: cache}
}

// Publish renders the payload and uploads the png, returning the image url.
// Identical payloads reuse the already-uploaded object.
func (s *QrCodesService) Publish(ctx context.Context, content string) (string, error) {
	url, err := utils.SafeCast[string](s.cache.Load(content))
	if err == nil { // found
		return url, nil
	}

	png, err := generateQrCode(content)
	if err != nil {
		return "", err
	}

	sum := sha256.Sum256([]byte(content))
	key := "qris/" + hex.EncodeToString(sum[:16]) + ".png"

	url, err = s.storage.PutObject(ctx, key, png, "image/png")
	if err != nil {
		return "", err
	}

	s.cache.SetNoExp(content, url)

	return url, nil
}

type smallerCircle struct {
	smallerPercent float64
}

// https://github.com/yeqown/go-qrcode/blob/main/example/with-custom-shape/main.go
func (sc *smallerCircle) DrawFinder(ctx *standard.DrawContext) {
	backup := sc.smallerPercent
	sc.smallerPercent = 1.0
	sc.Draw(ctx)
	sc.smallerPercent = backup
}

func newShape(radiusPercent float64) standard.IShape {
	return &smallerCircle{smallerPercent: radiusPercent}
}

func (sc *smallerCircle) Draw(ctx *standard.DrawContext) {
	w, h := ctx.Edge()
	x, y := ctx.UpperLeft()
	color := ctx.Color()

	// choose a proper radius values
	radius := w / 2
	r2 := h / 2
	if r2 <= radius {
		radius = r2
	}

	radius = int(float64(radius) * sc.smallerPercent)

	cx, cy := x+float64(w)/2.0, y+float64(h)/2.0 // get center point
	ctx.DrawCircle(cx, cy, float64(radius))
	ctx.SetColor(color)
	ctx.Fill()
}

type bufferAdaptor struct {
	*bytes.Buffer
}

func (b bufferAdaptor) Close() error {
	return nil
}

func (b bufferAdaptor) Write(p []byte) (int, error) {
	return b.Buffer.Write(p)
}

// returns qr code png bytes
func generateQrCode(content string) ([]byte, error) {
	shape := newShape(0.7)
	qrc, err := qrcode.New(content)
	if err != nil {
		fmt.Printf("qrcode.New: %v\n", err)
		return nil, err
	}

	b := bufferAdaptor{Buffer: bytes.NewBuffer(nil)}
	w2 := standard.NewWithWriter(b, standard.WithCustomShape(shape))

	if err = qrc.Save(w2); err != nil {
		return nil, err
	}

	return b.Bytes(), nil
}
