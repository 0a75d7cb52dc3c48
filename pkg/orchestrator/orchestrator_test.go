package orchestrator

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/ontoproxy/ontoproxy/pkg/cache"
	"github.com/ontoproxy/ontoproxy/pkg/format"
)

const turtleBody = "@prefix ex: <http://example.org/> .\nex:s ex:p ex:o ."

func TestFirstFetchDirectHit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/turtle")
		w.Write([]byte(turtleBody))
	}))
	defer srv.Close()

	o := New(t.TempDir(), srv.Client())
	res, err := o.Handle(context.Background(), RequestDescriptor{
		SourceURI: srv.URL + "/o",
		Requested: format.Turtle,
	})
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if res.Format != format.Turtle || string(res.Data) != turtleBody {
		t.Fatalf("got %+v", res)
	}
	if filepath.Base(res.Path) != "ontology.ttl" {
		t.Fatalf("unexpected cache path %q", res.Path)
	}
}

func TestCacheHitMakesNoNetworkCall(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "text/turtle")
		w.Write([]byte(turtleBody))
	}))
	defer srv.Close()

	o := New(t.TempDir(), srv.Client())
	req := RequestDescriptor{SourceURI: srv.URL + "/o", Requested: format.Turtle}

	first, err := o.Handle(context.Background(), req)
	if err != nil {
		t.Fatalf("first Handle: %v", err)
	}
	second, err := o.Handle(context.Background(), req)
	if err != nil {
		t.Fatalf("second Handle: %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected exactly one upstream call, got %d", calls)
	}

	firstBytes, _ := os.ReadFile(first.Path)
	secondBytes, _ := os.ReadFile(second.Path)
	if string(firstBytes) != string(secondBytes) {
		t.Fatalf("responses differ across identical requests")
	}
}

func TestDownloadThenConvert(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "text/turtle")
		w.Write([]byte(turtleBody))
	}))
	defer srv.Close()

	o := New(t.TempDir(), srv.Client())
	res, err := o.Handle(context.Background(), RequestDescriptor{
		SourceURI: srv.URL + "/o",
		Requested: format.RdfXml,
	})
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected exactly one upstream call, got %d", calls)
	}
	if res.Format != format.RdfXml {
		t.Fatalf("got format %s, want RdfXml", res.Format)
	}
	if filepath.Base(res.Path) != "ontology.rdf" && filepath.Base(res.Path) != "ontology.owl" {
		t.Fatalf("unexpected converted file name %q", res.Path)
	}
	if _, err := os.Stat(filepath.Join(filepath.Dir(res.Path), "ontology.ttl")); err != nil {
		t.Fatalf("expected the downloaded Turtle to remain cached: %v", err)
	}
}

func TestConvertFromCachePreference(t *testing.T) {
	dir := t.TempDir()
	root := dir
	uriDir := cache.DirectoryFor(root, "http://example.org/o")
	if _, err := cache.EnsureDir(uriDir); err != nil {
		t.Fatal(err)
	}
	if err := cache.WriteFile(cache.FileFor(uriDir, format.Turtle), []byte(turtleBody)); err != nil {
		t.Fatal(err)
	}

	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	o := New(root, srv.Client())
	res, err := o.Handle(context.Background(), RequestDescriptor{
		SourceURI:  "http://example.org/o",
		Requested:  format.NTriples,
		Preference: PreferConvert,
	})
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if called {
		t.Fatal("expected no network call when converting from cache")
	}
	if res.Format != format.NTriples {
		t.Fatalf("got %s, want NTriples", res.Format)
	}
}

func TestNonMachineReadableSourceHTMLRequested(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte("<html><body>doc</body></html>"))
	}))
	defer srv.Close()

	o := New(t.TempDir(), srv.Client())
	res, err := o.Handle(context.Background(), RequestDescriptor{
		SourceURI: srv.URL + "/o",
		Requested: format.Html,
	})
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if res.Format != format.Html {
		t.Fatalf("got %s, want Html", res.Format)
	}
}

func TestNonMachineReadableSourceRDFRequested(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte("<html><body>doc</body></html>"))
	}))
	defer srv.Close()

	root := t.TempDir()
	dir := cache.DirectoryFor(root, srv.URL+"/o")
	if _, err := cache.EnsureDir(dir); err != nil {
		t.Fatal(err)
	}
	if err := cache.WriteFile(cache.FileFor(dir, format.Html), []byte("<html></html>")); err != nil {
		t.Fatal(err)
	}

	o := New(root, srv.Client())
	_, err := o.Handle(context.Background(), RequestDescriptor{
		SourceURI: srv.URL + "/o",
		Requested: format.Turtle,
	})
	if err == nil {
		t.Fatal("expected an error: only a non-machine-readable source is available")
	}
}
