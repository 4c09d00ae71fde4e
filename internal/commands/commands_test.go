package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	gh "github.com/google/go-github/v68/github"

	"github.com/vitaly-krugl/yaghpy/internal/config"
	"github.com/vitaly-krugl/yaghpy/internal/format"
	"github.com/vitaly-krugl/yaghpy/internal/rank"
)

type mockClient struct {
	repos    []*gh.Repository
	reposErr error
	pulls    map[string]int
}

func (m *mockClient) ListOrgRepos(_ context.Context, _ string, _ *gh.RepositoryListByOrgOptions) ([]*gh.Repository, *gh.Response, error) {
	if m.reposErr != nil {
		return nil, nil, m.reposErr
	}
	return m.repos, lastPage(), nil
}

func (m *mockClient) ListPullRequests(_ context.Context, _, repo string, _ *gh.PullRequestListOptions) ([]*gh.PullRequest, *gh.Response, error) {
	pulls := make([]*gh.PullRequest, m.pulls[repo])
	for i := range pulls {
		pulls[i] = &gh.PullRequest{Number: gh.Ptr(i + 1)}
	}
	return pulls, lastPage(), nil
}

func lastPage() *gh.Response {
	return &gh.Response{Response: &http.Response{StatusCode: 200}}
}

func makeRepo(name string, stars, forks int) *gh.Repository {
	return &gh.Repository{
		Owner:           &gh.User{Login: gh.Ptr("org")},
		Name:            gh.Ptr(name),
		StargazersCount: gh.Ptr(stars),
		ForksCount:      gh.Ptr(forks),
	}
}

func newTestApp(client *mockClient) *App {
	app := NewApp(config.Config{}, "test-sha", "")
	app.GHClient = client
	return app
}

// execute runs the CLI with the given arguments and captures its output.
func execute(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := app.NewRootCommand()
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestStarsCommand(t *testing.T) {
	client := &mockClient{repos: []*gh.Repository{
		makeRepo("a", 100, 0),
		makeRepo("b", 50, 0),
		makeRepo("c", 200, 0),
	}}

	out, err := execute(t, newTestApp(client), "stars", "nodejs", "--max", "3")
	if err != nil {
		t.Fatal(err)
	}
	want := "c:200\na:100\nb:50\n"
	if out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestStarsCommand_DefaultMax(t *testing.T) {
	repos := []*gh.Repository{
		makeRepo("a", 1, 0), makeRepo("b", 2, 0), makeRepo("c", 3, 0),
		makeRepo("d", 4, 0), makeRepo("e", 5, 0), makeRepo("f", 6, 0),
	}

	out, err := execute(t, newTestApp(&mockClient{repos: repos}), "stars", "nodejs")
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(out, "\n"); got != 5 {
		t.Errorf("default run printed %d lines, want 5:\n%s", got, out)
	}
	if !strings.HasPrefix(out, "f:6\n") {
		t.Errorf("unexpected leader: %q", out)
	}
}

func TestPullsCommand(t *testing.T) {
	client := &mockClient{
		repos: []*gh.Repository{
			makeRepo("x", 0, 5),
			makeRepo("y", 0, 2),
		},
		pulls: map[string]int{"x": 10, "y": 20},
	}

	out, err := execute(t, newTestApp(client), "pulls", "nodejs", "--max", "2")
	if err != nil {
		t.Fatal(err)
	}
	want := "y:20\nx:10\n"
	if out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestContribRatioCommand(t *testing.T) {
	client := &mockClient{
		repos: []*gh.Repository{
			makeRepo("busy", 0, 4),
			makeRepo("forkless", 0, 0),
			makeRepo("quiet", 0, 8),
		},
		pulls: map[string]int{"busy": 10, "quiet": 4, "forkless": 99},
	}

	out, err := execute(t, newTestApp(client), "contrib-ratio", "nodejs")
	if err != nil {
		t.Fatal(err)
	}
	want := "busy:2.5\nquiet:0.5\n"
	if out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestContribPercentAlias(t *testing.T) {
	client := &mockClient{
		repos: []*gh.Repository{makeRepo("busy", 0, 4)},
		pulls: map[string]int{"busy": 10},
	}

	out, err := execute(t, newTestApp(client), "contrib-percent", "nodejs")
	if err != nil {
		t.Fatal(err)
	}
	if out != "busy:2.5\n" {
		t.Errorf("got %q", out)
	}
}

func TestInvalidMax(t *testing.T) {
	client := &mockClient{repos: []*gh.Repository{makeRepo("a", 1, 0)}}

	_, err := execute(t, newTestApp(client), "stars", "nodejs", "--max", "0")
	if !errors.Is(err, rank.ErrInvalidMax) {
		t.Fatalf("expected ErrInvalidMax, got %v", err)
	}
}

func TestAPIErrorSurfacesStatus(t *testing.T) {
	u, _ := url.Parse("https://api.github.com/orgs/nodejs/repos")
	client := &mockClient{reposErr: &gh.ErrorResponse{
		Response: &http.Response{
			StatusCode: 403,
			Request:    &http.Request{Method: "GET", URL: u},
		},
		Message: "forbidden",
	}}

	_, err := execute(t, newTestApp(client), "stars", "nodejs")
	if err == nil || !strings.Contains(err.Error(), "403") {
		t.Fatalf("expected error mentioning 403, got %v", err)
	}
}

func TestMalformedBasicAuthFlag(t *testing.T) {
	app := NewApp(config.Config{ConfigPath: filepath.Join(t.TempDir(), "unused")}, "", "")

	_, err := execute(t, app, "stars", "nodejs", "--basic-auth", "alicepass")
	if !errors.Is(err, config.ErrMalformedCredentials) {
		t.Fatalf("expected ErrMalformedCredentials, got %v", err)
	}
}

func TestMissingOrganizationArg(t *testing.T) {
	client := &mockClient{}

	_, err := execute(t, newTestApp(client), "stars")
	if err == nil {
		t.Fatal("expected argument error")
	}
}

func TestUnknownAction(t *testing.T) {
	client := &mockClient{}

	_, err := execute(t, newTestApp(client), "watchers", "nodejs")
	if err == nil {
		t.Fatal("expected unknown command error")
	}
}

func TestExportCommand(t *testing.T) {
	client := &mockClient{repos: []*gh.Repository{
		makeRepo("a", 100, 0),
		makeRepo("c", 200, 0),
	}}

	out, err := execute(t, newTestApp(client), "export", "stars", "nodejs", "--max", "2")
	if err != nil {
		t.Fatal(err)
	}

	var records []format.Record
	if err := json.Unmarshal([]byte(out), &records); err != nil {
		t.Fatalf("export output is not valid JSON: %v\n%s", err, out)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	first := records[0]
	if first.Repository != "c" || first.Value != 200 || first.Organization != "nodejs" || first.Action != "stars" {
		t.Errorf("unexpected first record: %+v", first)
	}
	if first.Date == "" {
		t.Error("record date is empty")
	}
}

func TestExportCommand_UnknownAction(t *testing.T) {
	_, err := execute(t, newTestApp(&mockClient{}), "export", "watchers", "nodejs")
	if err == nil || !strings.Contains(err.Error(), "unknown action") {
		t.Fatalf("expected unknown action error, got %v", err)
	}
}

func TestVersionCommand(t *testing.T) {
	app := newTestApp(&mockClient{})
	app.GitDirty = "yes"

	out, err := execute(t, app, "version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Git SHA: test-sha") || !strings.Contains(out, "Git Dirty: true") {
		t.Errorf("unexpected version output: %q", out)
	}
}

func TestParseAction(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"stars", "stars", false},
		{"forks", "forks", false},
		{"pulls", "pulls", false},
		{"contrib-ratio", "contrib-ratio", false},
		{"contrib-percent", "contrib-ratio", false},
		{"watchers", "", true},
	}
	for _, tt := range tests {
		got, err := ParseAction(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseAction(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseAction(%q): %v", tt.in, err)
			continue
		}
		if string(got) != tt.want {
			t.Errorf("ParseAction(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
