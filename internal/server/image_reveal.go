package server

import (
	"github.com/gin-gonic/gin"
	flatbuffers "github.com/google/flatbuffers/go"
	"net/http"
	"pxsteg/api"
	"pxsteg/api/pxsteg/Stego"
	"pxsteg/internal/logging"
	pxstegImage "pxsteg/pkg/image"
	"pxsteg/pkg/model"
)

// RevealTextHandler godoc
//
// @Summary Reveal text hidden in an image
// @Description This endpoint will reveal the text previously hidden in the supplied image. The password is only needed if one was used when hiding
// @Tags stego
// @Accept json
// @Produce json
// @Param requestBody body api.RevealRequest true "Body with the image to reveal text from"
// @Success 200 {object} api.RevealTextResponse
// @Failure 400 {object} api.Error
// @Failure 401 {object} api.Error
// @Failure 404 {object} api.Error
// @Failure 422 {object} api.Error
// @Failure 500 {object} api.Error
// @Router /stego/reveal-text [post]
func (h stegoHandler) RevealTextHandler(ctx *gin.Context) {
	logger := logging.BuildLoggerFromCtx(ctx)
	logger.Debug("Processing reveal text request")

	imageDecoder, password, ok := h.newDecoder(ctx, logger)
	if !ok {
		return
	}

	text, err := imageDecoder.RevealText(password)
	if err != nil {
		handleCodecError(ctx, logger, "Error revealing text from image", err)
		return
	}

	logger.With("stats", newRevealLogStats(imageDecoder.Stats())).Info("Image decoding was successful")

	ctx.JSON(http.StatusOK, api.RevealTextResponse{Text: text, Header: imageDecoder.Header()})
}

// RevealFileHandler godoc
//
// @Summary Reveal a file hidden in an image
// @Description This endpoint will reveal the file previously hidden in the supplied image. The success response format is dictated by the Accept header, but all errors are returned as JSON
// @Tags stego
// @Accept json
// @Produce json,octet-stream
// @Param requestBody body api.RevealRequest true "Body with the image to reveal a file from"
// @Success 200 {object} api.RevealFileResponse
// @Failure 400 {object} api.Error
// @Failure 401 {object} api.Error
// @Failure 404 {object} api.Error
// @Failure 422 {object} api.Error
// @Failure 500 {object} api.Error
// @Router /stego/reveal-file [post]
func (h stegoHandler) RevealFileHandler(ctx *gin.Context) {
	logger := logging.BuildLoggerFromCtx(ctx)
	logger.Debug("Processing reveal file request")

	imageDecoder, password, ok := h.newDecoder(ctx, logger)
	if !ok {
		return
	}

	file, err := imageDecoder.RevealFile(password)
	if err != nil {
		handleCodecError(ctx, logger, "Error revealing file from image", err)
		return
	}

	logger.With("stats", newRevealLogStats(imageDecoder.Stats())).Info("Image decoding was successful")

	if wantsFlatBuffers(ctx) {
		ctx.Data(http.StatusOK, mimeFlatBuffers, buildRevealFileResponse(file))
		return
	}
	ctx.JSON(http.StatusOK, api.RevealFileResponse{File: file, Header: imageDecoder.Header()})
}

func (h stegoHandler) newDecoder(ctx *gin.Context, logger *logging.Logger) (*pxstegImage.Decoder, string, bool) {
	var requestBody api.RevealRequest
	if err := ctx.ShouldBindJSON(&requestBody); err != nil {
		handleBindError(ctx, logger, err)
		return nil, "", false
	}

	stegoImage, ok := h.decodeRequestImage(ctx, logger, requestBody.Image)
	if !ok {
		return nil, "", false
	}

	imageDecoder, err := pxstegImage.NewImageDecoder(stegoImage)
	if err != nil {
		handleCodecError(ctx, logger, "Error reading header from image", err)
		return nil, "", false
	}
	imageDecoder.SetMaxRevealedBytes(h.config.MaxRevealedBytes)
	return imageDecoder, requestBody.Password, true
}

func buildRevealFileResponse(file model.OutputFile) []byte {
	fbResponseBuilder := flatbuffers.NewBuilder(len(file.Content) + len(file.Name) + 64)
	nameOffset := fbResponseBuilder.CreateString(file.Name)
	contentOffset := fbResponseBuilder.CreateByteVector(file.Content)

	Stego.RevealFileResponseStart(fbResponseBuilder)
	Stego.RevealFileResponseAddName(fbResponseBuilder, nameOffset)
	Stego.RevealFileResponseAddContent(fbResponseBuilder, contentOffset)
	response := Stego.RevealFileResponseEnd(fbResponseBuilder)
	fbResponseBuilder.Finish(response)
	return fbResponseBuilder.FinishedBytes()
}
