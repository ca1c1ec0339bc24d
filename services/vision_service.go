package services

import (
	"context"
	"encoding/base64"
	"errors"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"
)

// VisionService extracts printed menu text from uploaded photos via
// Rekognition text detection.
type VisionService struct {
	client *rekognition.Client
}

func NewVisionService() (*VisionService, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		return nil, err
	}
	return &VisionService{client: rekognition.NewFromConfig(cfg)}, nil
}

// DetectMenuText returns the detected text lines, top to bottom, for a
// base64 data-URI image.
func (v *VisionService) DetectMenuText(ctx context.Context, base64Img string) ([]string, error) {
	if !strings.HasPrefix(base64Img, "data:image") {
		return nil, errors.New("invalid data URI")
	}
	idx := strings.Index(base64Img, ",")
	if idx < 0 {
		return nil, errors.New("invalid data URI")
	}
	data, err := base64.StdEncoding.DecodeString(base64Img[idx+1:])
	if err != nil {
		return nil, err
	}

	out, err := v.client.DetectText(ctx, &rekognition.DetectTextInput{
		Image: &types.Image{Bytes: data},
	})
	if err != nil {
		return nil, err
	}

	var lines []string
	for _, t := range out.TextDetections {
		// WORD detections duplicate their parent LINE
		if t.Type == types.TextTypesLine && t.DetectedText != nil {
			lines = append(lines, *t.DetectedText)
		}
	}
	return lines, nil
}
