package server

import (
	"bytes"
	"github.com/gin-gonic/gin"
	"image"
	"image/png"
	"net/http"
	"pxsteg/api"
	"pxsteg/internal/logging"
	"pxsteg/pkg/config"
	pxstegImage "pxsteg/pkg/image"
	"pxsteg/pkg/model"
)

type stegoHandler struct {
	config config.ServerConfig
}

// decodeRequestImage decodes a carrier image, checking its dimensions against the configured limit before any pixel
// data is decoded. On failure the response has already been written
func (h stegoHandler) decodeRequestImage(ctx *gin.Context, logger *logging.Logger, raw []byte) (image.Image, bool) {
	imgConfig, _, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		logger.WithError(err).Info("Error decoding request image config")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errInvalidImage)
		return nil, false
	}
	if h.config.MaxCoverPixels > 0 && imgConfig.Width*imgConfig.Height > h.config.MaxCoverPixels {
		logger.Info("Request image exceeds the pixel limit", "width", imgConfig.Width, "height", imgConfig.Height)
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errImageTooLarge)
		return nil, false
	}

	img, _, err := pxstegImage.DecodeImage(bytes.NewReader(raw))
	if err != nil {
		logger.WithError(err).Info("Error decoding request image")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errInvalidImage)
		return nil, false
	}
	return img, true
}

func toEncodeConfig(opts api.EncodeOptions) (config.ImageEncodeConfig, error) {
	channels, err := model.ParseChannelMask(opts.Channels)
	if err != nil {
		return config.ImageEncodeConfig{}, err
	}
	errorCorrection, err := model.ParseErrorCorrectionLevel(opts.ErrorCorrection)
	if err != nil {
		return config.ImageEncodeConfig{}, err
	}
	outputFormat, err := config.ParseOutputFormat(opts.OutputFormat)
	if err != nil {
		return config.ImageEncodeConfig{}, err
	}

	return config.ImageEncodeConfig{
		BitsPerChannel:      opts.BitsPerChannel,
		Channels:            channels,
		Compress:            opts.Compress,
		Password:            opts.Password,
		ErrorCorrection:     errorCorrection,
		OutputFormat:        outputFormat,
		PngCompressionLevel: png.BestCompression, // to reduce bandwidth costs since lower compression results in huge images
	}, nil
}

func wantsFlatBuffers(ctx *gin.Context) bool {
	return ctx.NegotiateFormat(gin.MIMEJSON, mimeFlatBuffers) == mimeFlatBuffers
}
