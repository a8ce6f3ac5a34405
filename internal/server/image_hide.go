package server

import (
	"bytes"
	"github.com/gin-gonic/gin"
	flatbuffers "github.com/google/flatbuffers/go"
	"net/http"
	"pxsteg/api"
	"pxsteg/api/pxsteg/Stego"
	"pxsteg/internal/logging"
	pxstegImage "pxsteg/pkg/image"
	"pxsteg/pkg/model"
)

// HideTextHandler godoc
//
// @Summary Hide text in the supplied image
// @Description This endpoint will hide the supplied text in the image, and return the resulting image along with a report of the capacity used and the image distortion. The success response format is dictated by the Accept header, but all errors are returned as JSON
// @Tags stego
// @Accept json
// @Produce json,octet-stream
// @Param requestBody body api.HideTextRequest true "Body with the cover image, the text to hide, and the encoding options"
// @Success 200 {object} api.HideResponse
// @Failure 400 {object} api.Error
// @Failure 413 {object} api.Error
// @Failure 500 {object} api.Error
// @Router /stego/hide-text [post]
func (h stegoHandler) HideTextHandler(ctx *gin.Context) {
	var requestBody api.HideTextRequest

	logger := logging.BuildLoggerFromCtx(ctx)
	logger.Debug("Processing hide text request")

	if err := ctx.ShouldBindJSON(&requestBody); err != nil {
		handleBindError(ctx, logger, err)
		return
	}

	h.hide(ctx, logger, requestBody.Image, requestBody.EncodeOptions, func(encoder *pxstegImage.Encoder) (model.HideResult, error) {
		return encoder.HideText(requestBody.Text)
	})
}

// HideFileHandler godoc
//
// @Summary Hide a file in the supplied image
// @Description This endpoint will hide the supplied file, along with its name, in the image, and return the resulting image. The success response format is dictated by the Accept header, but all errors are returned as JSON
// @Tags stego
// @Accept json
// @Produce json,octet-stream
// @Param requestBody body api.HideFileRequest true "Body with the cover image, the file to hide, and the encoding options"
// @Success 200 {object} api.HideResponse
// @Failure 400 {object} api.Error
// @Failure 413 {object} api.Error
// @Failure 500 {object} api.Error
// @Router /stego/hide-file [post]
func (h stegoHandler) HideFileHandler(ctx *gin.Context) {
	var requestBody api.HideFileRequest

	logger := logging.BuildLoggerFromCtx(ctx)
	logger.Debug("Processing hide file request")

	if err := ctx.ShouldBindJSON(&requestBody); err != nil {
		handleBindError(ctx, logger, err)
		return
	}

	h.hide(ctx, logger, requestBody.Image, requestBody.EncodeOptions, func(encoder *pxstegImage.Encoder) (model.HideResult, error) {
		return encoder.HideFile(requestBody.FileName, requestBody.FileContent)
	})
}

func (h stegoHandler) hide(ctx *gin.Context, logger *logging.Logger, rawImage []byte, opts api.EncodeOptions,
	hideFunc func(encoder *pxstegImage.Encoder) (model.HideResult, error)) {
	iConfig, err := toEncodeConfig(opts)
	if err != nil {
		handleCodecError(ctx, logger, "Invalid encode options", err)
		return
	}

	coverImage, ok := h.decodeRequestImage(ctx, logger, rawImage)
	if !ok {
		return
	}

	imageEncoder, err := pxstegImage.NewImageEncoder(coverImage, iConfig)
	if err != nil {
		handleCodecError(ctx, logger, "Error creating image encoder", err)
		return
	}

	result, err := hideFunc(imageEncoder)
	if err != nil {
		handleCodecError(ctx, logger, "Error hiding data in image", err)
		return
	}

	encodedImageBuffer := bytes.NewBuffer(make([]byte, 0, len(rawImage))) // pre allocate with size of original, since it should be similar
	if err = imageEncoder.WriteEncodedImage(encodedImageBuffer); err != nil {
		handleCodecError(ctx, logger, "Error writing encoded image", err)
		return
	}

	logger.With("stats", newHideLogStats(imageEncoder.Stats(), result)).Info("Image encoding was successful")

	if wantsFlatBuffers(ctx) {
		ctx.Data(http.StatusOK, mimeFlatBuffers, buildHideResponse(encodedImageBuffer.Bytes(), result))
		return
	}
	ctx.JSON(http.StatusOK, api.HideResponse{
		EncodedImage: encodedImageBuffer.Bytes(),
		Format:       string(imageEncoder.Config().OutputFormat),
		Result:       result,
	})
}

func buildHideResponse(encodedImage []byte, result model.HideResult) []byte {
	fbResponseBuilder := flatbuffers.NewBuilder(len(encodedImage) + 64)
	imageOffset := fbResponseBuilder.CreateByteVector(encodedImage)

	Stego.HideResponseStart(fbResponseBuilder)
	Stego.HideResponseAddEncodedImage(fbResponseBuilder, imageOffset)
	Stego.HideResponseAddUsedCapacityBits(fbResponseBuilder, uint64(result.UsedCapacityBits))
	Stego.HideResponseAddEncrypted(fbResponseBuilder, result.Encrypted)
	Stego.HideResponseAddPsnr(fbResponseBuilder, result.PSNR)
	response := Stego.HideResponseEnd(fbResponseBuilder)
	fbResponseBuilder.Finish(response)
	return fbResponseBuilder.FinishedBytes()
}
