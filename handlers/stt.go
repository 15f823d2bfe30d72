// File: handlers/stt.go
package handlers

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	speech "cloud.google.com/go/speech/apiv1"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"google.golang.org/api/option"
	speechpb "google.golang.org/genproto/googleapis/cloud/speech/v1"

	"bookline/config"
)

const (
	maxAudioBytes    = 5 * 1024 * 1024
	allowedExtension = ".wav"
)

// SpeechHandler transcribes short voice requests ("book me a dentist
// tomorrow morning") so the transcript can be fed to intent extraction.
type SpeechHandler struct {
	Logger *zap.Logger
}

// NewSpeechHandler constructs a SpeechHandler.
func NewSpeechHandler(logger *zap.Logger) *SpeechHandler {
	return &SpeechHandler{Logger: logger}
}

type wavFormat struct {
	channels   uint16
	sampleRate uint32
}

// parseWavFormat reads the channel count and sample rate from a RIFF/WAVE
// header. PCM 16-bit is assumed; Google STT rejects anything else anyway.
func parseWavFormat(data []byte) (*wavFormat, error) {
	if len(data) < 36 || string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
		return nil, errors.New("not a RIFF/WAVE file")
	}
	var f wavFormat
	if err := binary.Read(bytes.NewReader(data[22:24]), binary.LittleEndian, &f.channels); err != nil {
		return nil, err
	}
	if err := binary.Read(bytes.NewReader(data[24:28]), binary.LittleEndian, &f.sampleRate); err != nil {
		return nil, err
	}
	if f.channels == 0 || f.sampleRate == 0 {
		return nil, errors.New("invalid WAV format chunk")
	}
	return &f, nil
}

// STTHandler accepts a multipart WAV upload and returns its transcript.
func (h *SpeechHandler) STTHandler(c *gin.Context) {
	language := c.DefaultPostForm("language", "en-US")

	file, header, err := c.Request.FormFile("audio")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "audio file is required", "details": err.Error()})
		return
	}
	defer file.Close()

	if ext := strings.ToLower(filepath.Ext(header.Filename)); ext != allowedExtension {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid file type",
			"details": fmt.Sprintf("expected %s, got %s", allowedExtension, ext),
		})
		return
	}

	audioData, err := io.ReadAll(io.LimitReader(file, maxAudioBytes))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read audio file", "details": err.Error()})
		return
	}

	format, err := parseWavFormat(audioData)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid WAV file", "details": err.Error()})
		return
	}

	ctx := c.Request.Context()
	var opts []option.ClientOption
	if config.AppConfig.GoogleServiceAccountFile != "" {
		opts = append(opts, option.WithCredentialsFile(config.AppConfig.GoogleServiceAccountFile))
	}
	client, err := speech.NewClient(ctx, opts...)
	if err != nil {
		h.Logger.Error("failed to initialize speech client", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "speech service unavailable, please try again later"})
		return
	}
	defer client.Close()

	resp, err := client.Recognize(ctx, &speechpb.RecognizeRequest{
		Config: &speechpb.RecognitionConfig{
			Encoding:          speechpb.RecognitionConfig_LINEAR16,
			SampleRateHertz:   int32(format.sampleRate),
			AudioChannelCount: int32(format.channels),
			LanguageCode:      language,
		},
		Audio: &speechpb.RecognitionAudio{
			AudioSource: &speechpb.RecognitionAudio_Content{Content: audioData},
		},
	})
	if err != nil {
		h.Logger.Error("speech recognition failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "speech recognition failed, please try again later"})
		return
	}

	var transcript strings.Builder
	for _, result := range resp.Results {
		for _, alt := range result.Alternatives {
			transcript.WriteString(alt.Transcript + " ")
		}
	}
	c.JSON(http.StatusOK, gin.H{"transcript": strings.TrimSpace(transcript.String())})
}
