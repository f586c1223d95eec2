// Package agent implements the AI tutor answering finance questions.
//
// The tutor is a Gemini chat session grounded on the education library. It
// can call tools to read market prices and search articles.
package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	finans "github.com/nechh42/akilli-finans-asistan"
	"github.com/nechh42/akilli-finans-asistan/library"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used by the tutor.
const DefaultModel = "gemini-2.5-flash"

// maxToolCalls bounds the function calls answering a single question.
const maxToolCalls = 8

const prompt = "ask> "

// chat is the part of a genai.Chat the tutor uses.
type chat interface {
	Send(ctx context.Context, parts ...*genai.Part) (*genai.GenerateContentResponse, error)
}

// Tutor is the AI tutor.
type Tutor struct {
	Model  string
	Config *genai.GenerateContentConfig
	Tools  Toolbox

	w    io.Writer
	r    *bufio.Reader
	chat chat
}

// NewTutor creates a tutor grounded on lib, with tools over lib and the
// market catalog.
func NewTutor(w io.Writer, r io.Reader, lib *library.Library, c *finans.Catalog) *Tutor {
	functions := []Function{
		&MarketPrices{Catalog: c},
		&SearchArticles{Library: lib},
	}
	return &Tutor{
		Model: DefaultModel,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclarations(functions)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: Instruction(lib)}}},
		},
		Tools: NewToolbox(functions),
		w:     w,
		r:     bufio.NewReader(r),
	}
}

// Instruction returns the system instruction of the tutor: its role and the
// library it is grounded on.
func Instruction(lib *library.Library) string {
	var b strings.Builder
	b.WriteString(`Sen Akıllı Finans Asistanı'nın eğitmenisin. Kullanıcılara finansal okuryazarlık,
yatırım araçları ve risk yönetimi konusunda Türkçe, sade ve kısa cevaplar verirsin.
Yatırım tavsiyesi vermezsin; verdiğin bilgilerin eğitim amaçlı olduğunu hatırlatırsın.
Güncel fiyatlar için market_prices, makaleler için search_articles araçlarını kullan.
`)

	if len(lib.FAQ) > 0 {
		b.WriteString("\n# Sıkça Sorulan Sorular\n")
		for _, q := range lib.FAQ {
			fmt.Fprintf(&b, "\n## %s\n\n%s\n", q.Question, q.Answer)
		}
	}
	if len(lib.Articles) > 0 {
		b.WriteString("\n# Makaleler\n\n")
		for _, a := range lib.Articles {
			fmt.Fprintf(&b, "- %s (%s, %d dk): %s\n", a.Title, a.Category, a.ReadTime, a.Excerpt)
		}
	}
	if len(lib.Courses) > 0 {
		b.WriteString("\n# Kurslar\n\n")
		for _, c := range lib.Courses {
			fmt.Fprintf(&b, "- %s (%s, %d modül, %s)\n", c.Title, c.Level, c.Modules, c.Duration)
		}
	}
	return b.String()
}

// Start creates the chat session.
func (t *Tutor) Start(ctx context.Context, client *genai.Client) error {
	session, err := client.Chats.Create(ctx, t.Model, t.Config, nil)
	if err != nil {
		return err
	}
	t.chat = session
	return nil
}

// Ask sends a question and returns the answer, running the tool calls the
// model asks for in between.
func (t *Tutor) Ask(ctx context.Context, parts ...*genai.Part) (*genai.Content, error) {
	if t.chat == nil {
		return nil, fmt.Errorf("tutor is not started")
	}
	for range maxToolCalls + 1 {
		resp, err := t.chat.Send(ctx, parts...)
		if err != nil {
			return nil, err
		}
		if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
			return nil, fmt.Errorf("no response from the tutor")
		}
		part0 := resp.Candidates[0].Content.Parts[0]
		if part0.FunctionCall == nil {
			return resp.Candidates[0].Content, nil
		}
		if t.Tools == nil {
			return nil, fmt.Errorf("tutor doesn't know how to make function calls")
		}
		// Send back the tool response until we have a real answer.
		parts = []*genai.Part{{FunctionResponse: t.Tools(ctx, part0.FunctionCall)}}
	}
	return nil, fmt.Errorf("too many function calls for a single question")
}

// Run starts the interactive session. prompts are asked first, then
// questions are read from the input until "bye" or end of input.
func (t *Tutor) Run(ctx context.Context, client *genai.Client, prompts ...string) error {
	if t.chat == nil {
		if err := t.Start(ctx, client); err != nil {
			return err
		}
	}

	fmt.Fprintln(t.w, "Finans eğitmeninize sorunuzu yazın. Çıkmak için 'bye' yazın.")

	for {
		fmt.Fprint(t.w, prompt)
		var input string

		// Flush prompts from the list and then ask for the user.
		if len(prompts) > 0 {
			input, prompts = strings.TrimSpace(prompts[0]), prompts[1:]
			if input == "" {
				continue
			}
			fmt.Fprintln(t.w, input)
		} else {
			var err error
			input, err = readLine(ctx, t.r)
			if err == io.EOF {
				return nil // Clean exit on Ctrl+D
			}
			if err != nil {
				return err
			}
		}

		input = strings.TrimSpace(input)
		if input == "bye" {
			return nil
		}
		if input == "" {
			continue
		}

		content, err := t.Ask(ctx, &genai.Part{Text: input})
		if err != nil {
			return err
		}
		fmt.Fprintln(t.w, content.Parts[0].Text)
	}
}

// readLine reads the next line of r, or returns ctx's error as soon as ctx is
// done.
func readLine(ctx context.Context, r *bufio.Reader) (string, error) {
	type result struct {
		line string
		err  error
	}
	read := make(chan result, 1)
	go func() {
		line, err := r.ReadString('\n')
		read <- result{line, err}
	}()
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-read:
		return res.line, res.err
	}
}
