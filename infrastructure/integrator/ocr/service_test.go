package ocr

import (
	"context"
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/gestionale-negozio-api/infrastructure/integrator/ocr/ocrclient/mocks"
	"github.com/vfg2006/gestionale-negozio-api/internal/config"
	"go.uber.org/mock/gomock"
)

func writeTestImage(t *testing.T, width, height int) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "scontrino.png")
	img := imaging.New(width, height, color.White)
	require.NoError(t, imaging.Save(img, path))
	return path
}

func TestOCRService_ExtractText(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	cfg := &config.Config{OCR: config.OCR{MinWidth: 1000}}
	service := New(cfg, mockClient)

	tests := []struct {
		name     string
		path     func(t *testing.T) string
		setup    func()
		validate func(t *testing.T, text string, err error)
	}{
		{
			name: "Imagem estreita - deve ser ampliada antes do OCR",
			path: func(t *testing.T) string { return writeTestImage(t, 400, 200) },
			setup: func() {
				mockClient.EXPECT().
					Recognize(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, path string) (string, error) {
						img, err := imaging.Open(path)
						require.NoError(t, err)
						assert.Equal(t, 1000, img.Bounds().Dx())
						assert.Equal(t, 500, img.Bounds().Dy())
						return "  Totale 12,50 €\n", nil
					})
			},
			validate: func(t *testing.T, text string, err error) {
				require.NoError(t, err)
				assert.Equal(t, "Totale 12,50 €", text)
			},
		},
		{
			name: "Imagem larga - mantém o tamanho original",
			path: func(t *testing.T) string { return writeTestImage(t, 1200, 300) },
			setup: func() {
				mockClient.EXPECT().
					Recognize(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, path string) (string, error) {
						img, err := imaging.Open(path)
						require.NoError(t, err)
						assert.Equal(t, 1200, img.Bounds().Dx())
						return "ok", nil
					})
			},
			validate: func(t *testing.T, text string, err error) {
				require.NoError(t, err)
				assert.Equal(t, "ok", text)
			},
		},
		{
			name: "Falha do tesseract - deve propagar erro",
			path: func(t *testing.T) string { return writeTestImage(t, 1000, 100) },
			setup: func() {
				mockClient.EXPECT().
					Recognize(gomock.Any(), gomock.Any()).
					Return("", errors.New("exit status 1"))
			},
			validate: func(t *testing.T, text string, err error) {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "exit status 1")
				assert.Empty(t, text)
			},
		},
		{
			name: "Extensão não suportada",
			path: func(t *testing.T) string {
				path := filepath.Join(t.TempDir(), "nota.txt")
				require.NoError(t, os.WriteFile(path, []byte("ciao"), 0o600))
				return path
			},
			setup: func() {},
			validate: func(t *testing.T, text string, err error) {
				assert.ErrorIs(t, err, ErrUnsupportedFile)
			},
		},
		{
			name: "PDF corrompido - deve retornar erro",
			path: func(t *testing.T) string {
				path := filepath.Join(t.TempDir(), "fattura.pdf")
				require.NoError(t, os.WriteFile(path, []byte("non è un pdf"), 0o600))
				return path
			},
			setup: func() {},
			validate: func(t *testing.T, text string, err error) {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "erro ao abrir PDF")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := tt.path(t)
			tt.setup()

			text, err := service.ExtractText(context.Background(), path)
			tt.validate(t, text, err)
		})
	}
}

func TestOCRService_IsAvailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	mockClient.EXPECT().Available().Return(false)

	service := New(&config.Config{}, mockClient)
	assert.False(t, service.IsAvailable())
}
