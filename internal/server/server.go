// Package server exposes regex compilation over HTTP.
package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"regexdfa/internal/automaton"
	"regexdfa/internal/regex"
)

type RouteData struct {
	Verb    string
	Path    string
	Handler gin.HandlerFunc
}

type Server struct {
	router http.Handler
	opts   []regex.Option
}

func NewServer(opts ...regex.Option) *Server {
	return &Server{opts: opts}
}

func (server *Server) Routes() []RouteData {
	return []RouteData{
		{"POST", "/compile", server.compile},
		{"POST", "/match", server.match},
		{"GET", "/postfix", server.postfix},
		{"POST", "/equivalent", server.equivalent},
	}
}

func (server *Server) Configure(routeData []RouteData) error {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	for _, data := range routeData {
		switch data.Verb {
		case "GET":
			router.GET(data.Path, data.Handler)
		case "POST":
			router.POST(data.Path, data.Handler)
		default:
			return errors.New("Invalid verb: " + data.Verb)
		}
	}
	server.router = router
	return nil
}

func (server *Server) Handler() http.Handler { return server.router }

type compileRequest struct {
	Regex string   `json:"regex"`
	Words []string `json:"words,omitempty"`
}

type transition struct {
	From   int    `json:"from"`
	Symbol string `json:"symbol"`
	To     int    `json:"to"`
}

type automatonResponse struct {
	ID          string       `json:"id"`
	Regex       string       `json:"regex"`
	Postfix     string       `json:"postfix"`
	States      []int        `json:"states"`
	Alphabet    []string     `json:"alphabet"`
	Initial     int          `json:"initial"`
	Finals      []int        `json:"finals"`
	Transitions []transition `json:"transitions"`
}

type matchResponse struct {
	Regex   string          `json:"regex"`
	Results map[string]bool `json:"results"`
}

func fail(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

func (server *Server) bindAndCompile(c *gin.Context) (*regex.Regex, *compileRequest, bool) {
	var req compileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, err)
		return nil, nil, false
	}
	re, err := regex.Compile(req.Regex, server.opts...)
	if err != nil {
		fail(c, err)
		return nil, nil, false
	}
	return re, &req, true
}

func (server *Server) compile(c *gin.Context) {
	re, _, ok := server.bindAndCompile(c)
	if !ok {
		return
	}
	d := re.DFA()
	resp := automatonResponse{
		ID:      uuid.New().String(),
		Regex:   re.Pattern(),
		Postfix: re.Postfix(),
		Initial: int(d.Initial()),
	}
	for _, q := range d.States() {
		resp.States = append(resp.States, int(q))
	}
	for _, q := range d.Finals() {
		resp.Finals = append(resp.Finals, int(q))
	}
	for _, s := range d.Alphabet() {
		resp.Alphabet = append(resp.Alphabet, string(s))
	}
	for _, t := range d.Transitions() {
		resp.Transitions = append(resp.Transitions, transition{int(t.From), string(t.Symbol), int(t.To)})
	}
	c.JSON(http.StatusOK, resp)
}

func (server *Server) match(c *gin.Context) {
	re, req, ok := server.bindAndCompile(c)
	if !ok {
		return
	}
	resp := matchResponse{Regex: re.Pattern(), Results: map[string]bool{}}
	for _, w := range req.Words {
		resp.Results[w] = re.Match(w)
	}
	c.JSON(http.StatusOK, resp)
}

func (server *Server) postfix(c *gin.Context) {
	pattern := c.Query("regex")
	re, err := regex.Compile(pattern, server.opts...)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"regex": pattern, "explicit": re.Explicit(), "postfix": re.Postfix()})
}

type equivalentRequest struct {
	Left  string `json:"left"`
	Right string `json:"right"`
}

// equivalent compares two regexes and reports up to one word from each
// side of their symmetric difference.
func (server *Server) equivalent(c *gin.Context) {
	var req equivalentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, err)
		return
	}
	left, err := regex.Compile(req.Left, server.opts...)
	if err != nil {
		fail(c, err)
		return
	}
	right, err := regex.Compile(req.Right, server.opts...)
	if err != nil {
		fail(c, err)
		return
	}
	resp := gin.H{"equivalent": automaton.Equivalent(left.DFA(), right.DFA())}
	if w, ok := automaton.Difference(left.DFA(), right.DFA()).Shortest(); ok {
		resp["only_left"] = w
	}
	if w, ok := automaton.Difference(right.DFA(), left.DFA()).Shortest(); ok {
		resp["only_right"] = w
	}
	c.JSON(http.StatusOK, resp)
}
