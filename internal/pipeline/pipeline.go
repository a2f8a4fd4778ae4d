package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nguyentantai21042004/summarize-flow/internal/summarize"
	"github.com/nguyentantai21042004/summarize-flow/internal/transcribe"
)

type inputKind int

const (
	kindUnknown inputKind = iota
	kindDocument
	kindAudio
	kindVideo
)

var (
	documentExts = []string{".pdf", ".docx", ".txt"}
	audioExts    = []string{".mp3", ".wav", ".m4a", ".ogg", ".flac"}
	videoExts    = []string{".mp4", ".mov", ".mkv", ".webm"}
)

// Process turns one input file into a written summary: documents are
// extracted, audio is transcribed, video gets its audio track pulled out
// first. The summary is written as Markdown and DOCX to the output folder and
// the input is moved to the archive.
func (p *implPipeline) Process(ctx context.Context, filePath string) error {
	startTime := time.Now()
	name := filepath.Base(filePath)

	p.logger.Info(ctx, "Processing: %s", filePath)

	text, err := p.sourceText(ctx, filePath)
	if err != nil {
		return err
	}
	if strings.TrimSpace(text) == "" {
		p.logger.Warn(ctx, "No text in %s; skipping summarization", name)
		return p.moveToArchived(ctx, filePath)
	}

	res := p.summarizer.Summarize(ctx, text, summarize.PreferenceAuto, summarize.LengthMedium)
	if !res.Succeeded {
		return fmt.Errorf("summarize %s: %s", name, res.Text)
	}
	p.logger.Info(ctx, "Summarized %s via %s", name, res.Provider)

	if err := p.writeSummary(ctx, filePath, res); err != nil {
		return err
	}
	if err := p.moveToArchived(ctx, filePath); err != nil {
		p.logger.Warn(ctx, "Failed to archive %s: %v", filePath, err)
	}

	p.logger.Info(ctx, "Completed %s in %s", name, time.Since(startTime))
	return nil
}

// sourceText produces the plain text to summarize, whatever the input kind.
func (p *implPipeline) sourceText(ctx context.Context, filePath string) (string, error) {
	switch classify(filePath) {
	case kindDocument:
		text, err := p.extractor.Extract(ctx, filePath)
		if err != nil {
			return "", fmt.Errorf("extract %s: %w", filePath, err)
		}
		return text, nil

	case kindAudio:
		return p.transcribeFile(ctx, filePath)

	case kindVideo:
		audioPath, err := p.extractAudio(ctx, filePath)
		if err != nil {
			return "", err
		}
		defer p.cleanupTempFile(ctx, audioPath)
		return p.transcribeFile(ctx, audioPath)

	default:
		return "", fmt.Errorf("unsupported file type: %s", filePath)
	}
}

func (p *implPipeline) transcribeFile(ctx context.Context, audioPath string) (string, error) {
	f, err := os.Open(audioPath)
	if err != nil {
		return "", fmt.Errorf("open audio %s: %w", audioPath, err)
	}
	defer f.Close()

	transcript, err := p.transcriber.Transcribe(ctx, f, transcribe.MimeTypeForPath(audioPath))
	if err != nil {
		return "", fmt.Errorf("transcribe %s: %w", audioPath, err)
	}
	return transcript, nil
}

// extractAudio pulls the audio track out of a video container as 16kHz mono
// WAV, the cheapest upload format the transcription service accepts.
func (p *implPipeline) extractAudio(ctx context.Context, videoPath string) (string, error) {
	base := strings.TrimSuffix(filepath.Base(videoPath), filepath.Ext(videoPath))
	audioPath := filepath.Join(p.cfg.Paths.Temp, base+"_audio.wav")

	p.logger.Info(ctx, "Extracting audio track: %s", videoPath)

	args := []string{
		"-i", videoPath,
		"-vn",
		"-ar", "16000",
		"-ac", "1",
		"-c:a", "pcm_s16le",
		"-y",
		audioPath,
	}

	if _, err := p.executor.Execute(ctx, p.cfg.FFmpeg.BinaryPath, args...); err != nil {
		return "", fmt.Errorf("ffmpeg extract audio: %w", err)
	}

	return audioPath, nil
}

// writeSummary writes <name>.md and <name>.docx into the output folder.
func (p *implPipeline) writeSummary(ctx context.Context, inputPath string, res summarize.Result) error {
	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))

	md := fmt.Sprintf("# %s\n\n_%s · %s_\n\n%s\n",
		base,
		time.Now().Format("2006-01-02 15:04"),
		res.Provider,
		strings.TrimSpace(res.Text),
	)

	mdPath := filepath.Join(p.cfg.Paths.Output, base+".md")
	if err := os.WriteFile(mdPath, []byte(md), 0644); err != nil {
		return fmt.Errorf("write summary %s: %w", mdPath, err)
	}

	docxPath := filepath.Join(p.cfg.Paths.Output, base+".docx")
	if err := summaryToDocx(base, res.Text, docxPath); err != nil {
		return fmt.Errorf("write summary %s: %w", docxPath, err)
	}

	p.logger.Info(ctx, "Summary written: %s, %s", mdPath, docxPath)
	return nil
}

// moveToArchived moves a processed input out of the watch folder so it is not
// picked up again.
func (p *implPipeline) moveToArchived(ctx context.Context, filePath string) error {
	destPath := filepath.Join(p.cfg.Paths.Archived, filepath.Base(filePath))

	if err := os.Rename(filePath, destPath); err != nil {
		return fmt.Errorf("move to archived: %w", err)
	}

	p.logger.Debug(ctx, "Archived: %s -> %s", filePath, destPath)
	return nil
}

func (p *implPipeline) cleanupTempFile(ctx context.Context, path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		p.logger.Warn(ctx, "Failed to remove temp file %s: %v", path, err)
	}
}

func classify(path string) inputKind {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range documentExts {
		if ext == e {
			return kindDocument
		}
	}
	for _, e := range audioExts {
		if ext == e {
			return kindAudio
		}
	}
	for _, e := range videoExts {
		if ext == e {
			return kindVideo
		}
	}
	return kindUnknown
}
