package ocr

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/ledongthuc/pdf"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/gestionale-negozio-api/infrastructure/integrator/ocr/ocrclient"
	"github.com/vfg2006/gestionale-negozio-api/internal/config"
	"github.com/vfg2006/gestionale-negozio-api/internal/domain"
)

var (
	ErrUnsupportedFile = errors.New("tipo de arquivo não suportado para OCR")
	ErrNoTextLayer     = errors.New("PDF sem camada de texto")
)

var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".tif":  true,
	".tiff": true,
	".bmp":  true,
	".gif":  true,
}

type OCRIntegrator interface {
	ExtractText(ctx context.Context, path string) (string, error)
	ExtractInvoiceData(text string) domain.InvoiceExtraction
	IsAvailable() bool
}

type OCRService struct {
	cfg    *config.Config
	Client ocrclient.Client
}

func New(cfg *config.Config, client ocrclient.Client) OCRIntegrator {
	return &OCRService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *OCRService) IsAvailable() bool {
	return s.Client.Available()
}

func (s *OCRService) ExtractInvoiceData(text string) domain.InvoiceExtraction {
	return ExtractInvoiceData(text)
}

// ExtractText lê o texto de um PDF pela camada de texto ou de uma imagem via OCR
func (s *OCRService) ExtractText(ctx context.Context, path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))

	switch {
	case ext == ".pdf":
		return extractPDFText(path)
	case imageExtensions[ext]:
		return s.recognizeImage(ctx, path)
	default:
		return "", errors.Wrap(ErrUnsupportedFile, ext)
	}
}

func (s *OCRService) recognizeImage(ctx context.Context, path string) (string, error) {
	prepared, cleanup, err := s.preprocessImage(path)
	if err != nil {
		return "", err
	}
	defer cleanup()

	text, err := s.Client.Recognize(ctx, prepared)
	if err != nil {
		return "", errors.Wrap(err, "erro no reconhecimento OCR")
	}

	return strings.TrimSpace(text), nil
}

// preprocessImage converte para tons de cinza e amplia imagens estreitas
// para melhorar o reconhecimento. O arquivo temporário é removido pelo cleanup.
func (s *OCRService) preprocessImage(path string) (string, func(), error) {
	img, err := imaging.Open(path)
	if err != nil {
		return "", nil, errors.Wrap(err, "erro ao abrir imagem")
	}

	img = imaging.Grayscale(img)
	if minWidth := s.cfg.OCR.MinWidth; minWidth > 0 && img.Bounds().Dx() < minWidth {
		logrus.Debugf("Ampliando imagem %s de %dpx para %dpx", filepath.Base(path), img.Bounds().Dx(), minWidth)
		img = imaging.Resize(img, minWidth, 0, imaging.Lanczos)
	}

	tmp, err := os.CreateTemp("", "ocr-*.png")
	if err != nil {
		return "", nil, errors.Wrap(err, "erro ao criar arquivo temporário")
	}
	tmp.Close()

	cleanup := func() {
		if err := os.Remove(tmp.Name()); err != nil && !os.IsNotExist(err) {
			logrus.Warnf("Erro ao remover arquivo temporário %s: %v", tmp.Name(), err)
		}
	}

	if err := imaging.Save(img, tmp.Name()); err != nil {
		cleanup()
		return "", nil, errors.Wrap(err, "erro ao salvar imagem processada")
	}

	return tmp.Name(), cleanup, nil
}

func extractPDFText(path string) (string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		if f != nil {
			f.Close()
		}
		return "", errors.Wrap(err, "erro ao abrir PDF")
	}
	defer f.Close()

	var pages []string
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", errors.Wrapf(err, "erro ao ler página %d do PDF", i)
		}
		pages = append(pages, text)
	}

	text := strings.TrimSpace(strings.Join(pages, "\n"))
	if text == "" {
		return "", ErrNoTextLayer
	}

	return text, nil
}
