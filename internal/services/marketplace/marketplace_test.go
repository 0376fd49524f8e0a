package marketplace

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Windi-Fikriyansyah/platfrom_be_desain/internal/models"
	"github.com/Windi-Fikriyansyah/platfrom_be_desain/internal/store"
	"github.com/Windi-Fikriyansyah/platfrom_be_desain/internal/utils"
	"golang.org/x/crypto/bcrypt"
)

type fixture struct {
	store *store.Store
	svc   *Service
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	var mu sync.Mutex
	now := time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC)
	clock := func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		now = now.Add(time.Minute)
		return now
	}

	s := store.New(store.WithClock(clock))
	svc := NewService(RepositoriesFrom(s), WithPasswordHasher(func(pw string) (string, error) {
		return utils.HashPasswordCost(pw, bcrypt.MinCost)
	}))
	return fixture{store: s, svc: svc}
}

func (f fixture) register(t *testing.T, name string, role models.Role) Actor {
	t.Helper()
	u, err := f.svc.Register(RegisterInput{
		Username: name,
		Email:    name + "@example.com",
		Password: "secret123",
		Role:     role,
	})
	if err != nil {
		t.Fatalf("register %s: %v", name, err)
	}
	return Actor{UserID: u.ID, Role: u.Role}
}

func (f fixture) project(t *testing.T, client Actor) models.Project {
	t.Helper()
	p, err := f.svc.PostProject(client, ProjectInput{
		Title:       "Logo for a coffee shop",
		Description: "A warm, hand-drawn logo for a small neighbourhood coffee shop.",
		Budget:      300_00,
		Deadline:    models.DateOf(time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC)),
		Category:    models.CategoryLogoDesign,
	})
	if err != nil {
		t.Fatalf("post project: %v", err)
	}
	return p
}

func (f fixture) propose(t *testing.T, freelancer Actor, projectID models.ProjectID) models.Proposal {
	t.Helper()
	p, err := f.svc.SubmitProposal(freelancer, projectID, ProposalInput{
		CoverLetter:  "I have designed dozens of cafe brands and can start right away.",
		Price:        250_00,
		DeliveryTime: "5 days",
	})
	if err != nil {
		t.Fatalf("submit proposal: %v", err)
	}
	return p
}

func TestRegisterRejectsTakenUsernameAndEmail(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.register(t, "dina", models.RoleClient)

	_, err := f.svc.Register(RegisterInput{Username: "dina", Email: "new@example.com", Password: "secret123", Role: models.RoleClient})
	if !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("duplicate username err = %v, want %v", err, ErrUsernameTaken)
	}
	_, err = f.svc.Register(RegisterInput{Username: "rafi", Email: "Dina@Example.com", Password: "secret123", Role: models.RoleFreelancer})
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("duplicate email err = %v, want %v", err, ErrEmailTaken)
	}
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("duplicate email err = %v, want conflict kind", err)
	}
}

func TestRegisterStoresHashNotPassword(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	a := f.register(t, "dina", models.RoleClient)

	u, _ := f.store.Users.Get(a.UserID)
	if u.PasswordHash == "" || u.PasswordHash == "secret123" {
		t.Fatalf("password hash = %q", u.PasswordHash)
	}
	if _, err := f.svc.Authenticate("DINA@example.com", "secret123"); err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if _, err := f.svc.Authenticate("dina@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong password err = %v", err)
	}
	if _, err := f.svc.Authenticate("nobody@example.com", "secret123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown email err = %v", err)
	}
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	_, err := f.svc.Register(RegisterInput{Username: "x", Email: "x@example.com", Password: "secret123"})
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("err = %v, want invalid", err)
	}
	if f.store.Users.Len() != 0 {
		t.Fatal("expected no user to be created")
	}
}

func TestAcceptScenario(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	client := f.register(t, "client", models.RoleClient)
	f1 := f.register(t, "f1", models.RoleFreelancer)
	f2 := f.register(t, "f2", models.RoleFreelancer)

	project := f.project(t, client)
	if project.Status != models.ProjectOpen {
		t.Fatalf("new project status = %q", project.Status)
	}
	p1 := f.propose(t, f1, project.ID)
	p2 := f.propose(t, f2, project.ID)
	if p1.ID != 1 || p2.ID != 2 {
		t.Fatalf("proposal ids = %d, %d, want 1, 2", p1.ID, p2.ID)
	}
	if p1.Status != models.ProposalPending || p2.Status != models.ProposalPending {
		t.Fatalf("statuses = %q, %q", p1.Status, p2.Status)
	}

	got, err := f.svc.AcceptProposal(client, p1.ID)
	if err != nil {
		t.Fatalf("accept: %v", err)
	}
	if got.Accepted.Status != models.ProposalAccepted || got.Project.Status != models.ProjectInProgress {
		t.Fatalf("acceptance = %+v", got)
	}
	if len(got.Rejected) != 1 || got.Rejected[0].ID != p2.ID {
		t.Fatalf("rejected = %+v", got.Rejected)
	}

	stored1, _ := f.store.Proposals.Get(p1.ID)
	stored2, _ := f.store.Proposals.Get(p2.ID)
	storedProject, _ := f.store.Projects.Get(project.ID)
	if stored1.Status != models.ProposalAccepted {
		t.Fatalf("proposal 1 status = %q", stored1.Status)
	}
	if stored2.Status != models.ProposalRejected {
		t.Fatalf("proposal 2 status = %q", stored2.Status)
	}
	if storedProject.Status != models.ProjectInProgress {
		t.Fatalf("project status = %q", storedProject.Status)
	}
}

func TestAcceptRejectsEverySibling(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	client := f.register(t, "client", models.RoleClient)
	project := f.project(t, client)

	var ids []models.ProposalID
	for _, name := range []string{"f1", "f2", "f3", "f4"} {
		ids = append(ids, f.propose(t, f.register(t, name, models.RoleFreelancer), project.ID).ID)
	}
	if _, err := f.svc.RejectProposal(client, ids[3]); err != nil {
		t.Fatalf("pre-reject: %v", err)
	}

	if _, err := f.svc.AcceptProposal(client, ids[1]); err != nil {
		t.Fatalf("accept: %v", err)
	}
	for _, p := range f.store.Proposals.ByProject(project.ID) {
		want := models.ProposalRejected
		if p.ID == ids[1] {
			want = models.ProposalAccepted
		}
		if p.Status != want {
			t.Fatalf("proposal %d status = %q, want %q", p.ID, p.Status, want)
		}
	}
}

func TestSubmitLeavesProjectUnchanged(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	client := f.register(t, "client", models.RoleClient)
	freelancer := f.register(t, "f1", models.RoleFreelancer)
	project := f.project(t, client)

	before := f.store.Proposals.ByProject(project.ID)
	p := f.propose(t, freelancer, project.ID)
	after := f.store.Proposals.ByProject(project.ID)

	if len(after) != len(before)+1 {
		t.Fatalf("proposals for project: before %d after %d", len(before), len(after))
	}
	if after[len(after)-1].ID != p.ID || after[len(after)-1].Status != models.ProposalPending {
		t.Fatalf("new proposal = %+v", after[len(after)-1])
	}
	stored, _ := f.store.Projects.Get(project.ID)
	if stored != project {
		t.Fatalf("project changed: %+v vs %+v", stored, project)
	}
}

func TestSubmitDuplicateIsConflictWhateverTheFirstStatus(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name   string
		settle func(f fixture, client Actor, id models.ProposalID) error
	}{
		{"pending", func(fixture, Actor, models.ProposalID) error { return nil }},
		{"rejected", func(f fixture, client Actor, id models.ProposalID) error {
			_, err := f.svc.RejectProposal(client, id)
			return err
		}},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			f := newFixture(t)
			client := f.register(t, "client", models.RoleClient)
			freelancer := f.register(t, "f1", models.RoleFreelancer)
			project := f.project(t, client)
			first := f.propose(t, freelancer, project.ID)
			if err := tc.settle(f, client, first.ID); err != nil {
				t.Fatalf("settle: %v", err)
			}

			_, err := f.svc.SubmitProposal(freelancer, project.ID, ProposalInput{CoverLetter: "again", Price: 100, DeliveryTime: "1 day"})
			if !errors.Is(err, ErrDuplicateProposal) || !errors.Is(err, ErrConflict) {
				t.Fatalf("err = %v, want duplicate proposal conflict", err)
			}
			if got := len(f.store.Proposals.ByProject(project.ID)); got != 1 {
				t.Fatalf("proposal count = %d, want 1", got)
			}
		})
	}
}

func TestSubmitToInProgressProjectIsConflict(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	client := f.register(t, "client", models.RoleClient)
	f1 := f.register(t, "f1", models.RoleFreelancer)
	f2 := f.register(t, "f2", models.RoleFreelancer)
	project := f.project(t, client)
	p1 := f.propose(t, f1, project.ID)
	if _, err := f.svc.AcceptProposal(client, p1.ID); err != nil {
		t.Fatalf("accept: %v", err)
	}

	_, err := f.svc.SubmitProposal(f2, project.ID, ProposalInput{CoverLetter: "late", Price: 100, DeliveryTime: "1 day"})
	if !errors.Is(err, ErrProjectNotOpen) {
		t.Fatalf("err = %v, want %v", err, ErrProjectNotOpen)
	}
	if err.Error() != "project not open" {
		t.Fatalf("message = %q", err.Error())
	}
	if got := f.store.Proposals.Len(); got != 1 {
		t.Fatalf("proposal count = %d, want 1", got)
	}
}

func TestSubmitPreconditions(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	client := f.register(t, "client", models.RoleClient)
	freelancer := f.register(t, "f1", models.RoleFreelancer)
	project := f.project(t, client)

	tests := []struct {
		name    string
		actor   Actor
		project models.ProjectID
		want    error
	}{
		{"anonymous", Anonymous(), project.ID, ErrUnauthenticated},
		{"client cannot propose", client, project.ID, ErrForbidden},
		{"missing project", freelancer, project.ID + 100, ErrNotFound},
		{"unknown user id", Actor{UserID: 99, Role: models.RoleFreelancer}, project.ID, ErrUnauthenticated},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.svc.SubmitProposal(tc.actor, tc.project, ProposalInput{CoverLetter: "x", Price: 100, DeliveryTime: "1 day"})
			if !errors.Is(err, tc.want) {
				t.Fatalf("err = %v, want %v", err, tc.want)
			}
		})
	}
	if got := f.store.Proposals.Len(); got != 0 {
		t.Fatalf("proposal count = %d, want 0", got)
	}
}

func TestRejectTouchesOnlyTarget(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	client := f.register(t, "client", models.RoleClient)
	project := f.project(t, client)
	p1 := f.propose(t, f.register(t, "f1", models.RoleFreelancer), project.ID)
	p2 := f.propose(t, f.register(t, "f2", models.RoleFreelancer), project.ID)

	projectBefore, _ := f.store.Projects.Get(project.ID)
	siblingBefore, _ := f.store.Proposals.Get(p2.ID)

	got, err := f.svc.RejectProposal(client, p1.ID)
	if err != nil {
		t.Fatalf("reject: %v", err)
	}
	if got.Status != models.ProposalRejected {
		t.Fatalf("status = %q", got.Status)
	}

	projectAfter, _ := f.store.Projects.Get(project.ID)
	siblingAfter, _ := f.store.Proposals.Get(p2.ID)
	if projectAfter != projectBefore {
		t.Fatalf("project changed: %+v -> %+v", projectBefore, projectAfter)
	}
	if siblingAfter != siblingBefore {
		t.Fatalf("sibling changed: %+v -> %+v", siblingBefore, siblingAfter)
	}
}

func TestRejectAcceptedKeepsProjectInProgress(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	client := f.register(t, "client", models.RoleClient)
	project := f.project(t, client)
	p := f.propose(t, f.register(t, "f1", models.RoleFreelancer), project.ID)
	if _, err := f.svc.AcceptProposal(client, p.ID); err != nil {
		t.Fatalf("accept: %v", err)
	}

	if _, err := f.svc.RejectProposal(client, p.ID); err != nil {
		t.Fatalf("reject: %v", err)
	}
	stored, _ := f.store.Projects.Get(project.ID)
	if stored.Status != models.ProjectInProgress {
		t.Fatalf("project status = %q, want in_progress", stored.Status)
	}
}

func TestAcceptAndRejectRequireOwningClient(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	owner := f.register(t, "owner", models.RoleClient)
	other := f.register(t, "other", models.RoleClient)
	freelancer := f.register(t, "f1", models.RoleFreelancer)
	project := f.project(t, owner)
	p := f.propose(t, freelancer, project.ID)

	tests := []struct {
		name  string
		actor Actor
		id    models.ProposalID
		want  error
	}{
		{"other client", other, p.ID, ErrNotFound},
		{"missing proposal", owner, p.ID + 10, ErrNotFound},
		{"freelancer", freelancer, p.ID, ErrForbidden},
		{"anonymous", Anonymous(), p.ID, ErrUnauthenticated},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := f.svc.AcceptProposal(tc.actor, tc.id); !errors.Is(err, tc.want) {
				t.Fatalf("accept err = %v, want %v", err, tc.want)
			}
			if _, err := f.svc.RejectProposal(tc.actor, tc.id); !errors.Is(err, tc.want) {
				t.Fatalf("reject err = %v, want %v", err, tc.want)
			}
		})
	}

	stored, _ := f.store.Proposals.Get(p.ID)
	if stored.Status != models.ProposalPending {
		t.Fatalf("proposal status = %q, want pending", stored.Status)
	}
	storedProject, _ := f.store.Projects.Get(project.ID)
	if storedProject.Status != models.ProjectOpen {
		t.Fatalf("project status = %q, want open", storedProject.Status)
	}
}

func TestConcurrentAcceptsLeaveSingleAcceptedProposal(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	client := f.register(t, "client", models.RoleClient)
	project := f.project(t, client)

	var ids []models.ProposalID
	for _, name := range []string{"f1", "f2", "f3", "f4", "f5", "f6"} {
		ids = append(ids, f.propose(t, f.register(t, name, models.RoleFreelancer), project.ID).ID)
	}

	var wg sync.WaitGroup
	for _, id := range ids {
		id := id
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := f.svc.AcceptProposal(client, id); err != nil {
				t.Errorf("accept %d: %v", id, err)
			}
		}()
	}
	wg.Wait()

	accepted := 0
	for _, p := range f.store.Proposals.ByProject(project.ID) {
		switch p.Status {
		case models.ProposalAccepted:
			accepted++
		case models.ProposalRejected:
		default:
			t.Fatalf("proposal %d left %q", p.ID, p.Status)
		}
	}
	if accepted != 1 {
		t.Fatalf("accepted proposals = %d, want 1", accepted)
	}
}

func TestProjectProposalsHidesOtherClientsProjects(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	owner := f.register(t, "owner", models.RoleClient)
	other := f.register(t, "other", models.RoleClient)
	freelancer := f.register(t, "f1", models.RoleFreelancer)
	project := f.project(t, owner)
	f.propose(t, freelancer, project.ID)

	view, err := f.svc.ProjectProposals(owner, project.ID)
	if err != nil {
		t.Fatalf("owner view: %v", err)
	}
	if len(view.Proposals) != 1 || view.Freelancers[freelancer.UserID].Username != "f1" {
		t.Fatalf("view = %+v", view)
	}

	if _, err := f.svc.ProjectProposals(other, project.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("other client err = %v, want not found", err)
	}
	if _, err := f.svc.ProjectProposals(owner, project.ID+1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing project err = %v, want not found", err)
	}
}

func TestViewProjectPerRole(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	owner := f.register(t, "owner", models.RoleClient)
	other := f.register(t, "other", models.RoleClient)
	f1 := f.register(t, "f1", models.RoleFreelancer)
	f2 := f.register(t, "f2", models.RoleFreelancer)
	project := f.project(t, owner)
	f.propose(t, f1, project.ID)

	ownerView, err := f.svc.ViewProject(owner, project.ID)
	if err != nil {
		t.Fatalf("owner: %v", err)
	}
	if len(ownerView.Proposals) != 1 || ownerView.Client.Username != "owner" {
		t.Fatalf("owner view = %+v", ownerView)
	}

	otherView, err := f.svc.ViewProject(other, project.ID)
	if err != nil {
		t.Fatalf("other: %v", err)
	}
	if len(otherView.Proposals) != 0 {
		t.Fatal("non-owner client must not see proposals")
	}

	if v, _ := f.svc.ViewProject(f1, project.ID); v.CanPropose {
		t.Fatal("freelancer who proposed must not be offered the form again")
	}
	if v, _ := f.svc.ViewProject(f2, project.ID); !v.CanPropose {
		t.Fatal("fresh freelancer should be able to propose")
	}

	if _, err := f.svc.ViewProject(Anonymous(), project.ID); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("anonymous err = %v", err)
	}
	if _, err := f.svc.ViewProject(owner, 404); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing err = %v", err)
	}
}

func TestBrowseAndFeatured(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	client := f.register(t, "client", models.RoleClient)
	freelancer := f.register(t, "f1", models.RoleFreelancer)

	var projects []models.Project
	for i := 0; i < 5; i++ {
		projects = append(projects, f.project(t, client))
	}
	web, err := f.svc.PostProject(client, ProjectInput{Title: "Site", Budget: 100, Category: models.CategoryWebDesign})
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	p := f.propose(t, freelancer, projects[0].ID)
	if _, err := f.svc.AcceptProposal(client, p.ID); err != nil {
		t.Fatalf("accept: %v", err)
	}

	if got := f.svc.FeaturedProjects(); len(got) != 4 || got[0].ID != projects[0].ID {
		t.Fatalf("featured = %+v", got)
	}
	if got := f.svc.BrowseOpenProjects(""); len(got) != 5 {
		t.Fatalf("open projects = %d, want 5", len(got))
	}
	if got := f.svc.BrowseOpenProjects(string(models.CategoryWebDesign)); len(got) != 1 || got[0].ID != web.ID {
		t.Fatalf("web design = %+v", got)
	}
	if got := f.svc.BrowseOpenProjects("Knitting"); len(got) != 5 {
		t.Fatalf("unknown category should list all open, got %d", len(got))
	}
}

func TestPostProjectRequiresClient(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	freelancer := f.register(t, "f1", models.RoleFreelancer)
	client := f.register(t, "c1", models.RoleClient)

	if _, err := f.svc.PostProject(freelancer, ProjectInput{Title: "x", Category: models.CategoryBranding}); !errors.Is(err, ErrForbidden) {
		t.Fatalf("freelancer err = %v", err)
	}
	if _, err := f.svc.PostProject(Anonymous(), ProjectInput{Title: "x", Category: models.CategoryBranding}); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("anonymous err = %v", err)
	}
	if _, err := f.svc.PostProject(client, ProjectInput{Title: "x", Category: "Knitting"}); !errors.Is(err, ErrInvalid) {
		t.Fatalf("bad category err = %v", err)
	}
	if got := len(f.store.Projects.All()); got != 0 {
		t.Fatalf("projects = %d, want 0", got)
	}
}

func TestClientProjectsIncludesEveryStatus(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	client := f.register(t, "c1", models.RoleClient)
	other := f.register(t, "c2", models.RoleClient)
	freelancer := f.register(t, "f1", models.RoleFreelancer)

	taken := f.project(t, client)
	f.project(t, client)
	f.project(t, other)
	p := f.propose(t, freelancer, taken.ID)
	if _, err := f.svc.AcceptProposal(client, p.ID); err != nil {
		t.Fatalf("accept: %v", err)
	}

	got, err := f.svc.ClientProjects(client)
	if err != nil {
		t.Fatalf("client projects: %v", err)
	}
	if len(got) != 2 || got[0].ID != taken.ID || got[0].Status != models.ProjectInProgress {
		t.Fatalf("client projects = %+v", got)
	}
	if _, err := f.svc.ClientProjects(freelancer); !errors.Is(err, ErrForbidden) {
		t.Fatalf("freelancer err = %v", err)
	}

	if u, ok := f.svc.User(freelancer.UserID); !ok || u.Role != models.RoleFreelancer {
		t.Fatalf("User(%d) = %+v, %v", freelancer.UserID, u, ok)
	}
	if _, ok := f.svc.User(999); ok {
		t.Fatal("User(999) found")
	}
}

func TestMessagingConversationAndInbox(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	client := f.register(t, "client", models.RoleClient)
	f1 := f.register(t, "f1", models.RoleFreelancer)
	f2 := f.register(t, "f2", models.RoleFreelancer)
	project := f.project(t, client)

	send := func(from Actor, to models.UserID, pid *models.ProjectID, content string) {
		t.Helper()
		if _, err := f.svc.SendMessage(from, MessageInput{ReceiverID: to, ProjectID: pid, Content: content}); err != nil {
			t.Fatalf("send %q: %v", content, err)
		}
	}
	send(client, f1.UserID, nil, "hello")
	send(f1, client.UserID, &project.ID, "about the logo")
	send(client, f2.UserID, nil, "hi f2")
	send(client, f1.UserID, &project.ID, "sounds good")

	conv, err := f.svc.Conversation(client, f1.UserID, nil)
	if err != nil {
		t.Fatalf("conversation: %v", err)
	}
	if len(conv.Messages) != 3 {
		t.Fatalf("messages = %d, want 3", len(conv.Messages))
	}
	for i := 1; i < len(conv.Messages); i++ {
		if conv.Messages[i].CreatedAt.Before(conv.Messages[i-1].CreatedAt) {
			t.Fatal("conversation not in chronological order")
		}
	}
	scoped, _ := f.svc.Conversation(f1, client.UserID, &project.ID)
	if len(scoped.Messages) != 2 {
		t.Fatalf("project-scoped messages = %d, want 2", len(scoped.Messages))
	}

	inbox, err := f.svc.Inbox(client)
	if err != nil {
		t.Fatalf("inbox: %v", err)
	}
	if len(inbox) != 2 {
		t.Fatalf("inbox entries = %d, want 2", len(inbox))
	}
	if inbox[0].Partner.ID != f1.UserID || inbox[0].LastMessage.Content != "sounds good" {
		t.Fatalf("first inbox entry = %+v", inbox[0])
	}
	if inbox[1].Partner.ID != f2.UserID {
		t.Fatalf("second inbox entry = %+v", inbox[1])
	}
}

func TestSendMessageValidatesReferences(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	client := f.register(t, "client", models.RoleClient)
	missingProject := models.ProjectID(42)

	tests := []struct {
		name  string
		actor Actor
		in    MessageInput
		want  error
	}{
		{"anonymous", Anonymous(), MessageInput{ReceiverID: client.UserID, Content: "x"}, ErrUnauthenticated},
		{"missing receiver", client, MessageInput{ReceiverID: 99, Content: "x"}, ErrNotFound},
		{"missing project", client, MessageInput{ReceiverID: client.UserID, ProjectID: &missingProject, Content: "x"}, ErrNotFound},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := f.svc.SendMessage(tc.actor, tc.in); !errors.Is(err, tc.want) {
				t.Fatalf("err = %v, want %v", err, tc.want)
			}
		})
	}
	if got := f.store.Messages.Len(); got != 0 {
		t.Fatalf("messages = %d, want 0", got)
	}
}

func TestPortfolio(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	client := f.register(t, "client", models.RoleClient)
	freelancer := f.register(t, "f1", models.RoleFreelancer)

	in := PortfolioInput{Title: "Cafe logo", Description: "Warm tones", ImageURL: "https://example.com/a.png", Category: models.CategoryLogoDesign}
	if _, err := f.svc.AddPortfolioItem(client, in); !errors.Is(err, ErrForbidden) {
		t.Fatalf("client err = %v", err)
	}
	item, err := f.svc.AddPortfolioItem(freelancer, in)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if item.FreelancerID != freelancer.UserID {
		t.Fatalf("owner = %d", item.FreelancerID)
	}

	mine, _ := f.svc.MyPortfolio(freelancer)
	if len(mine) != 1 {
		t.Fatalf("own items = %d", len(mine))
	}
	owner, items, err := f.svc.PortfolioOf(client, freelancer.UserID)
	if err != nil || owner.Username != "f1" || len(items) != 1 {
		t.Fatalf("PortfolioOf = %+v, %d items, %v", owner, len(items), err)
	}
	if _, _, err := f.svc.PortfolioOf(freelancer, client.UserID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("client portfolio err = %v, want not found", err)
	}
}

func TestDashboards(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	client := f.register(t, "client", models.RoleClient)
	freelancer := f.register(t, "f1", models.RoleFreelancer)
	project := f.project(t, client)
	f.propose(t, freelancer, project.ID)

	cd, err := f.svc.ClientDashboard(client)
	if err != nil || len(cd.Projects) != 1 {
		t.Fatalf("client dashboard = %+v, %v", cd, err)
	}
	if _, err := f.svc.ClientDashboard(freelancer); !errors.Is(err, ErrForbidden) {
		t.Fatalf("freelancer on client dashboard err = %v", err)
	}

	fd, err := f.svc.FreelancerDashboard(freelancer)
	if err != nil {
		t.Fatalf("freelancer dashboard: %v", err)
	}
	if len(fd.Proposals) != 1 || fd.Projects[project.ID].Title != project.Title {
		t.Fatalf("freelancer dashboard = %+v", fd)
	}
}

func TestSeedSampleDataRunsOnce(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	now := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)

	created, err := f.svc.SeedSampleData(now)
	if err != nil || !created {
		t.Fatalf("first seed = %v, %v", created, err)
	}
	if f.store.Users.Len() != 2 || f.store.Proposals.Len() != 1 || f.store.Portfolio.Len() != 1 {
		t.Fatal("unexpected seed contents")
	}

	created, err = f.svc.SeedSampleData(now)
	if err != nil || created {
		t.Fatalf("second seed = %v, %v", created, err)
	}
	if f.store.Users.Len() != 2 {
		t.Fatalf("users = %d after second seed", f.store.Users.Len())
	}
}

func TestConcurrentSeedsWriteOnce(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	now := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		created int
	)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := f.svc.SeedSampleData(now)
			if err != nil {
				t.Errorf("seed: %v", err)
				return
			}
			if ok {
				mu.Lock()
				created++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if created != 1 {
		t.Fatalf("seeds that wrote = %d, want 1", created)
	}
	if f.store.Users.Len() != 2 || f.store.Projects.Len() != 1 {
		t.Fatalf("users = %d projects = %d", f.store.Users.Len(), f.store.Projects.Len())
	}
}
