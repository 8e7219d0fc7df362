package ocrclient

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/gestionale-negozio-api/internal/config"
)

var ErrTesseractUnavailable = errors.New("tesseract não encontrado")

type Client interface {
	Recognize(ctx context.Context, imagePath string) (string, error)
	Available() bool
}

// TesseractClient chama o binário do Tesseract e lê o texto da saída padrão
type TesseractClient struct {
	binPath  string
	language string
	timeout  time.Duration
}

func NewClient(cfg *config.Config) Client {
	timeout := cfg.OCR.Timeout
	if timeout <= 0 {
		timeout = time.Minute
	}

	return &TesseractClient{
		binPath:  cfg.OCR.TesseractPath,
		language: cfg.OCR.Language,
		timeout:  timeout,
	}
}

func (c *TesseractClient) Available() bool {
	_, err := exec.LookPath(c.binPath)
	return err == nil
}

func (c *TesseractClient) Recognize(ctx context.Context, imagePath string) (string, error) {
	if !c.Available() {
		return "", ErrTesseractUnavailable
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, c.binPath, imagePath, "stdout", "-l", c.language)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return "", errors.Wrap(ctx.Err(), "tesseract excedeu o tempo limite")
		}
		return "", errors.Wrapf(err, "erro ao executar tesseract: %s", strings.TrimSpace(stderr.String()))
	}

	return strings.TrimSpace(stdout.String()), nil
}
