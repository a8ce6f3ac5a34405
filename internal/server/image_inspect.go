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

// CapacityHandler godoc
//
// @Summary Report how much data fits in an image
// @Description This endpoint will report the raw and usable capacity of the supplied image for every bits per channel setting from 1 to 8, using the selected channels. When bits_per_channel is set, the row for that depth is also returned as the selected answer
// @Tags stego
// @Accept json
// @Produce json
// @Param requestBody body api.CapacityRequest true "Body with the image to measure"
// @Success 200 {object} model.CapacityReport
// @Failure 400 {object} api.Error
// @Failure 500 {object} api.Error
// @Router /stego/capacity [post]
func (h stegoHandler) CapacityHandler(ctx *gin.Context) {
	var requestBody api.CapacityRequest

	logger := logging.BuildLoggerFromCtx(ctx)
	if err := ctx.ShouldBindJSON(&requestBody); err != nil {
		handleBindError(ctx, logger, err)
		return
	}

	mask, err := model.ParseChannelMask(requestBody.Channels)
	if err != nil {
		handleCodecError(ctx, logger, "Invalid channels", err)
		return
	}

	// only the dimensions are needed, so the pixel data is never decoded
	imgConfig, _, err := image.DecodeConfig(bytes.NewReader(requestBody.Image))
	if err != nil {
		logger.WithError(err).Info("Error decoding request image config")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errInvalidImage)
		return
	}

	var report model.CapacityReport
	if requestBody.BitsPerChannel != 0 {
		report, err = pxstegImage.NewCapacityReportForDepth(imgConfig.Width, imgConfig.Height, mask, requestBody.BitsPerChannel)
	} else {
		report, err = pxstegImage.NewCapacityReport(imgConfig.Width, imgConfig.Height, mask)
	}
	if err != nil {
		handleCodecError(ctx, logger, "Error calculating capacity", err)
		return
	}
	ctx.JSON(http.StatusOK, report)
}

// VisualizeHandler godoc
//
// @Summary Render a bit plane of an image
// @Description This endpoint will render one bit plane of one color channel as a black and white PNG, white where the bit is set
// @Tags stego
// @Accept json
// @Produce json
// @Param requestBody body api.VisualizeRequest true "Body with the image, the channel (R, G or B) and the bit index (0 is the least significant)"
// @Success 200 {object} api.VisualizeResponse
// @Failure 400 {object} api.Error
// @Failure 500 {object} api.Error
// @Router /stego/visualize [post]
func (h stegoHandler) VisualizeHandler(ctx *gin.Context) {
	var requestBody api.VisualizeRequest

	logger := logging.BuildLoggerFromCtx(ctx)
	if err := ctx.ShouldBindJSON(&requestBody); err != nil {
		handleBindError(ctx, logger, err)
		return
	}

	channel, err := model.ParseChannel(requestBody.Channel)
	if err != nil {
		handleCodecError(ctx, logger, "Invalid channel", err)
		return
	}
	img, ok := h.decodeRequestImage(ctx, logger, requestBody.Image)
	if !ok {
		return
	}

	plane, err := pxstegImage.ExtractPlane(img, channel, requestBody.Bit)
	if err != nil {
		handleCodecError(ctx, logger, "Error extracting bit plane", err)
		return
	}
	encodedPlane, err := encodePlane(plane)
	if err != nil {
		handleCodecError(ctx, logger, "Error encoding bit plane", err)
		return
	}
	ctx.JSON(http.StatusOK, api.VisualizeResponse{Plane: encodedPlane})
}

// VisualizeAllHandler godoc
//
// @Summary Render all bit planes of a channel
// @Description This endpoint will render the eight bit planes of one color channel as black and white PNGs, from least to most significant
// @Tags stego
// @Accept json
// @Produce json
// @Param requestBody body api.VisualizeAllRequest true "Body with the image and the channel (R, G or B)"
// @Success 200 {object} api.VisualizeAllResponse
// @Failure 400 {object} api.Error
// @Failure 500 {object} api.Error
// @Router /stego/visualize-all [post]
func (h stegoHandler) VisualizeAllHandler(ctx *gin.Context) {
	var requestBody api.VisualizeAllRequest

	logger := logging.BuildLoggerFromCtx(ctx)
	if err := ctx.ShouldBindJSON(&requestBody); err != nil {
		handleBindError(ctx, logger, err)
		return
	}

	channel, err := model.ParseChannel(requestBody.Channel)
	if err != nil {
		handleCodecError(ctx, logger, "Invalid channel", err)
		return
	}
	img, ok := h.decodeRequestImage(ctx, logger, requestBody.Image)
	if !ok {
		return
	}

	planes, err := pxstegImage.ExtractAllPlanes(img, channel)
	if err != nil {
		handleCodecError(ctx, logger, "Error extracting bit planes", err)
		return
	}
	response := api.VisualizeAllResponse{Planes: make([][]byte, 0, len(planes))}
	for _, plane := range planes {
		encodedPlane, err := encodePlane(plane)
		if err != nil {
			handleCodecError(ctx, logger, "Error encoding bit plane", err)
			return
		}
		response.Planes = append(response.Planes, encodedPlane)
	}
	ctx.JSON(http.StatusOK, response)
}

// AnalyzeHandler godoc
//
// @Summary Analyze the least significant bits of an image
// @Description This endpoint will report per channel statistics of the least significant bit plane, and whether a pxsteg header is present
// @Tags stego
// @Accept json
// @Produce json
// @Param requestBody body api.AnalyzeRequest true "Body with the image to analyze"
// @Success 200 {object} model.AnalysisResult
// @Failure 400 {object} api.Error
// @Failure 500 {object} api.Error
// @Router /stego/analyze [post]
func (h stegoHandler) AnalyzeHandler(ctx *gin.Context) {
	var requestBody api.AnalyzeRequest

	logger := logging.BuildLoggerFromCtx(ctx)
	if err := ctx.ShouldBindJSON(&requestBody); err != nil {
		handleBindError(ctx, logger, err)
		return
	}

	img, ok := h.decodeRequestImage(ctx, logger, requestBody.Image)
	if !ok {
		return
	}
	result, err := pxstegImage.Analyze(img)
	if err != nil {
		handleCodecError(ctx, logger, "Error analyzing image", err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

func encodePlane(plane *image.Gray) ([]byte, error) {
	var buf bytes.Buffer
	if err := pxstegImage.EncodeImage(&buf, plane, config.OutputFormatPNG, png.BestCompression); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
