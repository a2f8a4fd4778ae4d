package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/nguyentantai21042004/summarize-flow/internal/config"
	"github.com/nguyentantai21042004/summarize-flow/internal/extract"
	"github.com/nguyentantai21042004/summarize-flow/internal/history"
	"github.com/nguyentantai21042004/summarize-flow/internal/logger"
	"github.com/nguyentantai21042004/summarize-flow/internal/provider/gemini"
	"github.com/nguyentantai21042004/summarize-flow/internal/provider/huggingface"
	"github.com/nguyentantai21042004/summarize-flow/internal/summarize"
	"github.com/nguyentantai21042004/summarize-flow/internal/transcribe"
)

type app struct {
	summarizer  summarize.Summarizer
	transcriber transcribe.Transcriber
	extractor   extract.Extractor
	history     *history.Log
	logger      logger.Logger
	in          *bufio.Reader
}

func main() {
	ctx := context.Background()

	cfg, err := config.Load("config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level)

	hf := huggingface.New(cfg.HuggingFace)
	gm := gemini.New(cfg.Gemini)
	for _, p := range []summarize.Provider{hf, gm} {
		if !p.Configured() {
			log.Warn(ctx, "%s API key not set; provider disabled", p.Name())
		}
	}

	a := &app{
		summarizer:  summarize.New([]summarize.Provider{hf, gm}, cfg.Retry, log),
		transcriber: transcribe.New(cfg.Transcription),
		extractor:   extract.New(),
		history:     history.New(cfg.History.Limit),
		logger:      log,
		in:          bufio.NewReader(os.Stdin),
	}

	a.run(ctx)
}

func (a *app) run(ctx context.Context) {
	fmt.Println("\nAI Summarizer Ready! (Text + Audio + Document)")

	for {
		line, err := a.readLine("\nEnter choice: 1 (Text) / 2 (Audio) / 3 (Document) / h (History) / q (Quit): ")
		if err != nil {
			fmt.Println()
			return
		}
		choice := strings.ToLower(line)

		switch choice {
		case "q":
			fmt.Println("Exiting summarizer. Goodbye!")
			return
		case "1":
			a.handleText(ctx)
		case "2":
			a.handleAudio(ctx)
		case "3":
			a.handleDocument(ctx)
		case "h":
			a.showHistory()
		default:
			fmt.Println("Invalid choice, try again.")
		}
	}
}

func (a *app) handleText(ctx context.Context) {
	text := a.prompt("\nEnter text to summarize:\n")
	length, ok := a.promptLength()
	if !ok {
		return
	}

	res := a.summarizer.Summarize(ctx, text, summarize.PreferenceAuto, length)
	a.printResult("Summary", res)
	a.record("text", snippet(text), res)
}

func (a *app) handleAudio(ctx context.Context) {
	path := a.prompt("\nEnter full path to your audio file (mp3, wav, m4a, etc.): ")
	length, ok := a.promptLength()
	if !ok {
		return
	}

	if !a.transcriber.Configured() {
		fmt.Println("Deepgram API not configured. Cannot transcribe audio.")
		return
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Println("Audio file not found at the specified path.")
		} else {
			fmt.Printf("Could not open audio file: %v\n", err)
		}
		return
	}
	defer f.Close()

	transcript, err := a.transcriber.Transcribe(ctx, f, transcribe.MimeTypeForPath(path))
	if err != nil {
		fmt.Printf("Transcription failed: %v\n", err)
		return
	}
	if strings.TrimSpace(transcript) == "" {
		fmt.Println("No speech detected in audio.")
		return
	}

	res := a.summarizer.Summarize(ctx, transcript, summarize.PreferenceAuto, length)
	a.printResult("Audio Summary", res)
	a.record("audio", path, res)
}

func (a *app) handleDocument(ctx context.Context) {
	path := a.prompt("\nEnter full path to your document (PDF, DOCX, or TXT): ")
	length, ok := a.promptLength()
	if !ok {
		return
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		fmt.Println("Document file not found at the specified path.")
		return
	}

	text, err := a.extractor.Extract(ctx, path)
	if err != nil {
		if err == extract.ErrUnsupportedType {
			fmt.Println("Unsupported document type. Please use PDF, DOCX, or TXT.")
		} else {
			fmt.Printf("Could not read document: %v\n", err)
		}
		return
	}
	if strings.TrimSpace(text) == "" {
		fmt.Println("Could not extract text from the document.")
		return
	}

	res := a.summarizer.Summarize(ctx, text, summarize.PreferenceAuto, length)
	a.printResult("Document Summary", res)
	a.record("document", path, res)
}

func (a *app) showHistory() {
	entries := a.history.Entries()
	if len(entries) == 0 {
		fmt.Println("\nNo summaries yet.")
		return
	}

	fmt.Println("\n--- History ---")
	for i, e := range entries {
		status := e.Provider
		if !e.Succeeded {
			status = "failed"
		}
		fmt.Printf("%d. [%s] %s (%s): %s\n",
			i+1, e.At.Format("15:04:05"), e.Kind, status, snippet(e.Summary))
	}
}

func (a *app) prompt(msg string) string {
	line, _ := a.readLine(msg)
	return line
}

// readLine reports an error only when stdin is exhausted with nothing read.
func (a *app) readLine(msg string) (string, error) {
	fmt.Print(msg)
	line, err := a.in.ReadString('\n')
	line = strings.TrimSpace(line)
	if err != nil && line == "" {
		return "", err
	}
	return line, nil
}

func (a *app) promptLength() (summarize.Length, bool) {
	raw := a.prompt("Choose summary length (Small / Medium / Large): ")
	length, err := summarize.ParseLength(raw)
	if err != nil {
		fmt.Println(err)
		return "", false
	}
	return length, true
}

func (a *app) printResult(title string, res summarize.Result) {
	fmt.Printf("\n--- %s ---\n", title)
	if res.Succeeded {
		fmt.Printf("[%s] %s\n", res.Provider, res.Text)
		return
	}
	fmt.Println(res.Text)
}

func (a *app) record(kind, source string, res summarize.Result) {
	a.history.Add(history.Entry{
		Kind:      kind,
		Source:    source,
		Provider:  res.Provider,
		Summary:   res.Text,
		Succeeded: res.Succeeded,
		At:        time.Now(),
	})
}

// snippet shortens long text for history display.
func snippet(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	const max = 80
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max]) + "..."
}
