package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/pollbooth-dev/pollbooth/internal/testutil"
	"github.com/pollbooth-dev/pollbooth/internal/types"
)

func TestIndexListsPolls(t *testing.T) {
	r, st := testutil.NewTestApp(t)

	testutil.CreateTestPoll(t, st, "Color?", "Red", "Blue")
	testutil.CreateTestPoll(t, st, "Animal?", "Cat", "Dog")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, testutil.MakeFormRequest("GET", "/", nil))

	testutil.AssertStatus(t, w, http.StatusOK)

	var body struct {
		Polls []types.PollSummary `json:"polls"`
	}
	testutil.AssertJSON(t, w, &body)

	if len(body.Polls) != 2 {
		t.Fatalf("Expected 2 polls, got %d", len(body.Polls))
	}
	if body.Polls[0].Question != "Color?" || body.Polls[1].Question != "Animal?" {
		t.Errorf("Unexpected poll listing: %+v", body.Polls)
	}
}

func TestIndexIncludesCurrentUser(t *testing.T) {
	r, st := testutil.NewTestApp(t)
	user := testutil.CreateTestUser(t, st, "alice", "secret123")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, testutil.MakeFormRequest("GET", "/", nil, testutil.SessionCookie(t, user)))

	testutil.AssertStatus(t, w, http.StatusOK)

	var body struct {
		User *types.UserResponse `json:"user"`
	}
	testutil.AssertJSON(t, w, &body)

	if body.User == nil || body.User.Username != "alice" {
		t.Errorf("Expected current user in index view, got %+v", body.User)
	}
}

func TestCreatePollRequiresLogin(t *testing.T) {
	r, _ := testutil.NewTestApp(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, testutil.MakeFormRequest("GET", "/create", nil))

	testutil.AssertRedirect(t, w, http.StatusFound, "/login?next=%2Fcreate")

	w = httptest.NewRecorder()
	r.ServeHTTP(w, testutil.MakeFormRequest("POST", "/create", url.Values{
		"question": {"Color?"},
		"options":  {"Red", "Blue"},
	}))

	testutil.AssertRedirect(t, w, http.StatusFound, "/login?next=%2Fcreate")
}

func TestCreatePoll(t *testing.T) {
	r, st := testutil.NewTestApp(t)
	user := testutil.CreateTestUser(t, st, "alice", "secret123")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, testutil.MakeFormRequest("POST", "/create", url.Values{
		"question": {"Color?"},
		"options":  {"Red", "Green", "Blue"},
	}, testutil.SessionCookie(t, user)))

	testutil.AssertRedirect(t, w, http.StatusSeeOther, "/")

	polls, err := st.ListPolls()
	if err != nil {
		t.Fatalf("ListPolls failed: %v", err)
	}
	if len(polls) != 1 {
		t.Fatalf("Expected 1 poll, got %d", len(polls))
	}

	poll, err := st.GetPoll(polls[0].ID)
	if err != nil {
		t.Fatalf("GetPoll failed: %v", err)
	}
	if len(poll.Options) != 3 {
		t.Fatalf("Expected 3 options, got %d", len(poll.Options))
	}
	for i, text := range []string{"Red", "Green", "Blue"} {
		if poll.Options[i].Text != text {
			t.Errorf("Option %d: expected %q, got %q", i, text, poll.Options[i].Text)
		}
		if poll.Options[i].Votes != 0 {
			t.Errorf("Option %d: expected 0 votes, got %d", i, poll.Options[i].Votes)
		}
	}
}

func TestCreatePollValidationErrors(t *testing.T) {
	r, st := testutil.NewTestApp(t)
	user := testutil.CreateTestUser(t, st, "alice", "secret123")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, testutil.MakeFormRequest("POST", "/create", url.Values{
		"question": {"Color?"},
		"options":  {"Red"},
	}, testutil.SessionCookie(t, user)))

	testutil.AssertStatus(t, w, http.StatusOK)

	var body struct {
		Errors map[string]string `json:"errors"`
	}
	testutil.AssertJSON(t, w, &body)
	if body.Errors["options"] == "" {
		t.Errorf("Expected options error, got %v", body.Errors)
	}

	// Nothing may be persisted on a failed submission.
	polls, err := st.ListPolls()
	if err != nil {
		t.Fatalf("ListPolls failed: %v", err)
	}
	if len(polls) != 0 {
		t.Errorf("Expected no polls after invalid submission, got %d", len(polls))
	}
}
