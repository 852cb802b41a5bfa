package portfolio

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"google.golang.org/genai"

	"github.com/Pradyumna2098/Portfolio/views"
)

// TextGenerator produces a completion for a natural-language prompt.
// jsonOutput asks the backend for application/json-shaped output.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string, jsonOutput bool) (string, error)
}

// GeminiGenerator implements TextGenerator against the Gemini API.
type GeminiGenerator struct {
	client *genai.Client
	model  string
}

// NewGeminiGenerator creates a Gemini-backed text generator.
func NewGeminiGenerator(ctx context.Context, apiKey, model string) (*GeminiGenerator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &GeminiGenerator{client: client, model: model}, nil
}

// Generate forwards the prompt and returns the raw model text.
func (g *GeminiGenerator) Generate(ctx context.Context, prompt string, jsonOutput bool) (string, error) {
	var cfg *genai.GenerateContentConfig
	if jsonOutput {
		cfg = &genai.GenerateContentConfig{ResponseMIMEType: "application/json"}
	}
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), cfg)
	if err != nil {
		return "", &DownstreamError{Service: "gemini", Err: err}
	}
	return resp.Text(), nil
}

// Close releases the generator. The genai client holds no connection of its
// own, so there is nothing to tear down.
func (g *GeminiGenerator) Close() error {
	return nil
}

// Schemas the JSON-shaped assistant endpoints validate against. A model
// reply that does not fit fails closed instead of being relayed unparsed.

// SkillAnalysis is the expected shape of an analyze-skills reply.
type SkillAnalysis struct {
	EmergingSkills []string `json:"emerging_skills"`
	Specialization string   `json:"specialization"`
	Explanation    string   `json:"explanation"`
}

// ProjectTagSuggestion is the expected shape of a generate-project-tags reply.
type ProjectTagSuggestion struct {
	Tags         []string `json:"tags"`
	Applications []string `json:"applications"`
	Difficulty   string   `json:"difficulty"`
}

// SearchResult is the expected shape of a search reply.
type SearchResult struct {
	Section        string            `json:"section"`
	Items          []json.RawMessage `json:"items"`
	RelevanceScore int               `json:"relevance_score"`
}

// decodeModelJSON parses a model reply into v, tolerating markdown code
// fences around the payload.
func decodeModelJSON(raw string, v any) error {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		if i := strings.LastIndex(s, "```"); i >= 0 {
			s = s[:i]
		}
		s = strings.TrimSpace(s)
	}
	if err := json.Unmarshal([]byte(s), v); err != nil {
		return &DownstreamError{Service: "gemini", Err: fmt.Errorf("unexpected response shape: %w", err)}
	}
	return nil
}

func (a *App) generator() (TextGenerator, error) {
	if a.Generator == nil {
		return nil, &DownstreamError{Service: "gemini", Err: fmt.Errorf("assistant is not configured")}
	}
	return a.Generator, nil
}

func (a *App) profile() *views.Profile {
	if a.Profile != nil {
		return a.Profile
	}
	return DefaultProfile()
}

func (a *App) handleGenerateBio(c echo.Context) error {
	gen, err := a.generator()
	if err != nil {
		return jsonError(c, err)
	}
	var req struct {
		VisitorType string `json:"visitor_type"`
	}
	if err := c.Bind(&req); err != nil {
		return jsonError(c, validationf("invalid request body"))
	}
	if req.VisitorType == "" {
		req.VisitorType = "general"
	}
	p := a.profile()
	prompt := fmt.Sprintf(`Generate a professional, engaging bio for %s, tailored for a %s visitor.
Include these details:
- %s
- Keep it concise (150 words max) and professional with a futuristic tone`,
		p.Name, req.VisitorType, p.Summary)

	text, err := gen.Generate(c.Request().Context(), prompt, false)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "bio": text})
}

func (a *App) handleAnalyzeSkills(c echo.Context) error {
	gen, err := a.generator()
	if err != nil {
		return jsonError(c, err)
	}
	var req struct {
		Skills []string `json:"skills"`
	}
	if err := c.Bind(&req); err != nil {
		return jsonError(c, validationf("invalid request body"))
	}
	skills := req.Skills
	if len(skills) == 0 {
		skills = a.profile().AllSkills()
	}
	prompt := fmt.Sprintf(`Based on these skills: %s

Suggest:
1. Three emerging technologies or skills that would complement this skill set
2. One specific area where deeper specialization would be valuable
3. A brief explanation of why these suggestions are relevant in today's tech landscape

Respond as JSON with keys: "emerging_skills" (array of strings), "specialization" (string), "explanation" (string)`,
		strings.Join(skills, ", "))

	text, err := gen.Generate(c.Request().Context(), prompt, true)
	if err != nil {
		return jsonError(c, err)
	}
	var analysis SkillAnalysis
	if err := decodeModelJSON(text, &analysis); err != nil {
		return jsonError(c, err)
	}
	if len(analysis.EmergingSkills) == 0 || analysis.Specialization == "" {
		return jsonError(c, &DownstreamError{Service: "gemini", Err: fmt.Errorf("incomplete analysis in response")})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "analysis": analysis})
}

func (a *App) handleProjectTags(c echo.Context) error {
	gen, err := a.generator()
	if err != nil {
		return jsonError(c, err)
	}
	var req struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	}
	if err := c.Bind(&req); err != nil {
		return jsonError(c, validationf("invalid request body"))
	}
	if strings.TrimSpace(req.Title) == "" {
		return jsonError(c, validationf("project title is required"))
	}
	prompt := fmt.Sprintf(`Based on this project:
Title: %s
Description: %s

Generate:
1. A list of 5-7 relevant technology tags
2. 2-3 industry application areas
3. A difficulty level (Beginner, Intermediate, Advanced)

Respond as JSON with keys: "tags" (array of strings), "applications" (array of strings), "difficulty" (string)`,
		req.Title, req.Description)

	text, err := gen.Generate(c.Request().Context(), prompt, true)
	if err != nil {
		return jsonError(c, err)
	}
	var tags ProjectTagSuggestion
	if err := decodeModelJSON(text, &tags); err != nil {
		return jsonError(c, err)
	}
	if len(tags.Tags) == 0 || tags.Difficulty == "" {
		return jsonError(c, &DownstreamError{Service: "gemini", Err: fmt.Errorf("incomplete tag data in response")})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "tags_data": tags})
}

func (a *App) handleChatbot(c echo.Context) error {
	gen, err := a.generator()
	if err != nil {
		return jsonError(c, err)
	}
	var req struct {
		Message string `json:"message"`
	}
	if err := c.Bind(&req); err != nil {
		return jsonError(c, validationf("invalid request body"))
	}
	if strings.TrimSpace(req.Message) == "" {
		return jsonError(c, validationf("message is required"))
	}
	p := a.profile()
	prompt := fmt.Sprintf(`You are an AI assistant for %s's portfolio website.
About %s:
- %s
- Skills: %s
- Projects: %s
- Located in %s

Answer questions about %s's skills, projects, experience, or offer to connect visitors with them.
Keep responses concise, informative, and professional.

User: %s
Response:`,
		p.Name, p.Name, p.Summary,
		strings.Join(p.AllSkills(), ", "),
		strings.Join(p.ProjectTitles(), "; "),
		p.Location, p.Name, req.Message)

	text, err := gen.Generate(c.Request().Context(), prompt, false)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "response": text})
}

func (a *App) handleSearch(c echo.Context) error {
	gen, err := a.generator()
	if err != nil {
		return jsonError(c, err)
	}
	var req struct {
		Query string `json:"query"`
	}
	if err := c.Bind(&req); err != nil {
		return jsonError(c, validationf("invalid request body"))
	}
	if strings.TrimSpace(req.Query) == "" {
		return jsonError(c, validationf("query is required"))
	}
	p := a.profile()
	prompt := fmt.Sprintf(`Portfolio content includes:
- Projects: %s
- Skills: %s
- Experience: %s
- Education: %s

Based on the search query: %q

Return the most relevant content from the portfolio.
Respond as JSON with keys: "section" (one of project/skill/experience/education), "items" (array of matching items), "relevance_score" (integer 1-10)`,
		strings.Join(p.ProjectTitles(), "; "),
		strings.Join(p.AllSkills(), ", "),
		strings.Join(p.ExperienceSummaries(), "; "),
		strings.Join(p.EducationSummaries(), "; "),
		req.Query)

	text, err := gen.Generate(c.Request().Context(), prompt, true)
	if err != nil {
		return jsonError(c, err)
	}
	var result SearchResult
	if err := decodeModelJSON(text, &result); err != nil {
		return jsonError(c, err)
	}
	if result.Section == "" {
		return jsonError(c, &DownstreamError{Service: "gemini", Err: fmt.Errorf("missing section in response")})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "results": result})
}
