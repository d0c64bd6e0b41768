package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/dhruv-dosh/CollaborateSpace-Talent-Exchange-Network/config"
	"github.com/dhruv-dosh/CollaborateSpace-Talent-Exchange-Network/internal/entities"

	_ "github.com/lib/pq"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestProjectLifecycleIntegration(t *testing.T) {
	ctx := context.Background()

	cfg, cleanup := setupPostgres(t)
	t.Cleanup(cleanup)

	repo := New(ctx, testLogger(t), cfg)
	require.NoError(t, repo.OnStart(ctx))
	t.Cleanup(func() { _ = repo.OnStop(ctx) })

	_, err := repo.ListProjects(ctx, nil, nil)
	require.ErrorIs(t, err, entities.ErrProjectNotFound)

	owner := seedUser(t, repo, "alice", "alice@example.com")
	u2 := seedUser(t, repo, "bob", "bob@example.com")
	u3 := seedUser(t, repo, "carol", "carol@example.com")

	project, err := repo.CreateProject(ctx, entities.Project{
		Name:        "Apollo",
		Description: "mission tracker",
		Category:    "engineering",
		Tags:        []string{"go", "backend"},
	}, owner)
	require.NoError(t, err)
	require.Equal(t, owner, project.OwnerID)
	require.Equal(t, teamIDs(project.Team), []int64{owner})
	require.NotNil(t, project.Chat)
	require.Equal(t, teamIDs(project.Chat.Participants), []int64{owner})

	_, err = repo.CreateProject(ctx, entities.Project{Name: "Orphan"}, 99999)
	require.ErrorIs(t, err, entities.ErrUserNotFound)

	require.NoError(t, repo.AddProjectMember(ctx, project.ID, u2))
	require.NoError(t, repo.AddProjectMember(ctx, project.ID, u3))
	// adding an existing member is a no-op
	require.NoError(t, repo.AddProjectMember(ctx, project.ID, u2))

	fetched, err := repo.GetProject(ctx, project.ID)
	require.NoError(t, err)
	require.ElementsMatch(t, []int64{owner, u2, u3}, teamIDs(fetched.Team))

	chat, err := repo.GetChatByProject(ctx, project.ID)
	require.NoError(t, err)
	require.ElementsMatch(t, teamIDs(fetched.Team), teamIDs(chat.Participants))

	require.NoError(t, repo.RemoveProjectMember(ctx, project.ID, u3))
	// removing a non-member is a no-op
	require.NoError(t, repo.RemoveProjectMember(ctx, project.ID, u3))

	fetched, err = repo.GetProject(ctx, project.ID)
	require.NoError(t, err)
	require.ElementsMatch(t, []int64{owner, u2}, teamIDs(fetched.Team))

	chat, err = repo.GetChatByProject(ctx, project.ID)
	require.NoError(t, err)
	require.ElementsMatch(t, []int64{owner, u2}, teamIDs(chat.Participants))

	newName := "Apollo 11"
	updated, err := repo.UpdateProject(ctx, project.ID, entities.ProjectUpdate{
		Name: &newName,
		Tags: []string{"go"},
	})
	require.NoError(t, err)
	require.Equal(t, "Apollo 11", updated.Name)
	require.Equal(t, "mission tracker", updated.Description)
	require.Equal(t, []string{"go"}, updated.Tags)

	found, err := repo.SearchProjects(ctx, "Apollo", u2)
	require.NoError(t, err)
	require.Len(t, found, 1)

	// keyword match is case-sensitive
	found, err = repo.SearchProjects(ctx, "apollo", u2)
	require.NoError(t, err)
	require.Empty(t, found)

	// u3 was removed, so membership excludes the project
	found, err = repo.SearchProjects(ctx, "Apollo", u3)
	require.NoError(t, err)
	require.Empty(t, found)

	mine, err := repo.ListProjectsForUser(ctx, u2, nil, nil)
	require.NoError(t, err)
	require.Len(t, mine, 1)

	category := "engineering"
	tag := "go"
	filtered, err := repo.ListProjectsForUser(ctx, owner, &category, &tag)
	require.NoError(t, err)
	require.Len(t, filtered, 1)

	other := "design"
	filtered, err = repo.ListProjectsForUser(ctx, owner, &other, nil)
	require.NoError(t, err)
	require.Empty(t, filtered)

	require.NoError(t, repo.DeleteProject(ctx, project.ID))
	_, err = repo.GetProject(ctx, project.ID)
	require.ErrorIs(t, err, entities.ErrProjectNotFound)
	_, err = repo.GetChatByProject(ctx, project.ID)
	require.ErrorIs(t, err, entities.ErrProjectNotFound)

	require.ErrorIs(t, repo.DeleteProject(ctx, project.ID), entities.ErrProjectNotFound)
}

func TestRequirementLifecycleIntegration(t *testing.T) {
	ctx := context.Background()

	cfg, cleanup := setupPostgres(t)
	t.Cleanup(cleanup)

	repo := New(ctx, testLogger(t), cfg)
	require.NoError(t, repo.OnStart(ctx))
	t.Cleanup(func() { _ = repo.OnStop(ctx) })

	owner := seedUser(t, repo, "alice", "alice@example.com")
	member := seedUser(t, repo, "bob", "bob@example.com")

	project, err := repo.CreateProject(ctx, entities.Project{Name: "Apollo"}, owner)
	require.NoError(t, err)

	req, err := repo.CreateRequirement(ctx, entities.Requirement{
		Title:       "Implement Login Flow",
		Description: "oauth2 + sessions",
		Status:      "OPEN",
		Priority:    "HIGH",
		ProjectID:   project.ID,
	})
	require.NoError(t, err)
	require.NotZero(t, req.ID)
	require.NotNil(t, req.CreatedAt)
	require.Nil(t, req.AssigneeID)

	_, err = repo.CreateRequirement(ctx, entities.Requirement{Title: "Lost", ProjectID: 99999})
	require.ErrorIs(t, err, entities.ErrProjectNotFound)

	assigned, err := repo.AssignRequirement(ctx, req.ID, member)
	require.NoError(t, err)
	require.NotNil(t, assigned.AssigneeID)
	require.Equal(t, member, *assigned.AssigneeID)

	_, err = repo.AssignRequirement(ctx, req.ID, 99999)
	require.ErrorIs(t, err, entities.ErrUserNotFound)

	inProgress, err := repo.SetRequirementStatus(ctx, req.ID, "IN_PROGRESS")
	require.NoError(t, err)
	require.Equal(t, "IN_PROGRESS", inProgress.Status)

	desc := "oauth2 only"
	updated, err := repo.UpdateRequirement(ctx, req.ID, entities.RequirementUpdate{Description: &desc})
	require.NoError(t, err)
	require.Equal(t, "oauth2 only", updated.Description)
	require.Equal(t, "Implement Login Flow", updated.Title)
	require.Equal(t, "IN_PROGRESS", updated.Status)

	badAssignee := int64(99999)
	_, err = repo.UpdateRequirement(ctx, req.ID, entities.RequirementUpdate{AssigneeID: &badAssignee})
	require.ErrorIs(t, err, entities.ErrUserNotFound)

	// title matching is a case-insensitive substring
	title := "login"
	found, err := repo.SearchRequirements(ctx, entities.RequirementFilter{Title: &title})
	require.NoError(t, err)
	require.Len(t, found, 1)

	status := "IN_PROGRESS"
	found, err = repo.SearchRequirements(ctx, entities.RequirementFilter{Title: &title, Status: &status, AssigneeID: &member})
	require.NoError(t, err)
	require.Len(t, found, 1)

	miss := "CLOSED"
	found, err = repo.SearchRequirements(ctx, entities.RequirementFilter{Status: &miss})
	require.NoError(t, err)
	require.Empty(t, found)

	byProject, err := repo.ListRequirementsByProject(ctx, project.ID)
	require.NoError(t, err)
	require.Len(t, byProject, 1)

	_, err = repo.ListRequirementsByProject(ctx, 99999)
	require.ErrorIs(t, err, entities.ErrProjectNotFound)

	byAssignee, err := repo.ListRequirementsByAssignee(ctx, member)
	require.NoError(t, err)
	require.Len(t, byAssignee, 1)

	others, err := repo.ListRequirementsExcludingOwner(ctx, member)
	require.NoError(t, err)
	require.Len(t, others, 1)

	excluded, err := repo.ListRequirementsExcludingOwner(ctx, owner)
	require.NoError(t, err)
	require.Empty(t, excluded)

	require.NoError(t, repo.DeleteRequirement(ctx, req.ID))
	_, err = repo.GetRequirement(ctx, req.ID)
	require.ErrorIs(t, err, entities.ErrRequirementNotFound)

	_, err = repo.ListRequirementsExcludingOwner(ctx, owner)
	require.ErrorIs(t, err, entities.ErrRequirementNotFound)
}

func TestChatMessagesIntegration(t *testing.T) {
	ctx := context.Background()

	cfg, cleanup := setupPostgres(t)
	t.Cleanup(cleanup)

	repo := New(ctx, testLogger(t), cfg)
	require.NoError(t, repo.OnStart(ctx))
	t.Cleanup(func() { _ = repo.OnStop(ctx) })

	owner := seedUser(t, repo, "alice", "alice@example.com")
	member := seedUser(t, repo, "bob", "bob@example.com")

	project, err := repo.CreateProject(ctx, entities.Project{Name: "Apollo"}, owner)
	require.NoError(t, err)
	require.NoError(t, repo.AddProjectMember(ctx, project.ID, member))

	first, err := repo.CreateMessage(ctx, owner, project.ID, "kickoff at noon")
	require.NoError(t, err)
	require.Equal(t, project.ID, first.ProjectID)

	second, err := repo.CreateMessage(ctx, member, project.ID, "ack")
	require.NoError(t, err)

	_, err = repo.CreateMessage(ctx, owner, 99999, "void")
	require.ErrorIs(t, err, entities.ErrChatNotFound)

	history, err := repo.ListMessagesByProject(ctx, project.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	require.Equal(t, first.ID, history[0].ID)
	require.Equal(t, second.ID, history[1].ID)
	require.False(t, history[1].CreatedAt.Before(history[0].CreatedAt))

	require.NoError(t, repo.DeleteMessagesByProject(ctx, project.ID))

	history, err = repo.ListMessagesByProject(ctx, project.ID)
	require.NoError(t, err)
	require.Empty(t, history)

	// purge is idempotent
	require.NoError(t, repo.DeleteMessagesByProject(ctx, project.ID))

	err = repo.DeleteMessagesByProject(ctx, 99999)
	require.ErrorIs(t, err, entities.ErrChatNotFound)
}

func TestCommentsIntegration(t *testing.T) {
	ctx := context.Background()

	cfg, cleanup := setupPostgres(t)
	t.Cleanup(cleanup)

	repo := New(ctx, testLogger(t), cfg)
	require.NoError(t, repo.OnStart(ctx))
	t.Cleanup(func() { _ = repo.OnStop(ctx) })

	owner := seedUser(t, repo, "alice", "alice@example.com")

	project, err := repo.CreateProject(ctx, entities.Project{Name: "Apollo"}, owner)
	require.NoError(t, err)

	req, err := repo.CreateRequirement(ctx, entities.Requirement{Title: "auth", ProjectID: project.ID})
	require.NoError(t, err)

	first, err := repo.CreateComment(ctx, req.ID, owner, "looks good")
	require.NoError(t, err)
	second, err := repo.CreateComment(ctx, req.ID, owner, "needs tests")
	require.NoError(t, err)

	_, err = repo.CreateComment(ctx, 99999, owner, "void")
	require.ErrorIs(t, err, entities.ErrRequirementNotFound)

	comments, err := repo.ListCommentsByRequirement(ctx, req.ID)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	require.Equal(t, first.ID, comments[0].ID)
	require.Equal(t, second.ID, comments[1].ID)

	got, err := repo.GetComment(ctx, first.ID)
	require.NoError(t, err)
	require.Equal(t, "looks good", got.Content)
	require.Equal(t, owner, got.AuthorID)

	require.NoError(t, repo.DeleteComment(ctx, first.ID))
	_, err = repo.GetComment(ctx, first.ID)
	require.ErrorIs(t, err, entities.ErrCommentNotFound)
	require.ErrorIs(t, repo.DeleteComment(ctx, first.ID), entities.ErrCommentNotFound)

	comments, err = repo.ListCommentsByRequirement(ctx, req.ID)
	require.NoError(t, err)
	require.Len(t, comments, 1)
}

func seedUser(t *testing.T, repo *Postgres, username, email string) int64 {
	t.Helper()

	var id int64
	err := repo.db.QueryRow(
		context.Background(),
		`INSERT INTO users (username, email, api_token) VALUES ($1, $2, $3) RETURNING id`,
		username, email, fmt.Sprintf("token-%s", username),
	).Scan(&id)
	require.NoError(t, err)
	return id
}

func teamIDs(users []entities.User) []int64 {
	ids := make([]int64, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID)
	}
	return ids
}

func setupPostgres(t *testing.T) (*config.Config, func()) {
	t.Helper()

	pool, err := dockertest.NewPool("")
	require.NoError(t, err)

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_PASSWORD=postgres",
			"POSTGRES_USER=postgres",
			"POSTGRES_DB=collaborate_space_db",
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
	})
	require.NoError(t, err)

	hostPort := resource.GetPort("5432/tcp")

	port, err := strconv.Atoi(hostPort)
	require.NoError(t, err)
	migrationsDir, err := filepath.Abs(filepath.Join("..", "..", "..", "db", "migrations"))
	require.NoError(t, err)
	require.DirExists(t, migrationsDir)

	cfg := &config.Config{
		Server: config.ServerConfig{Host: "0.0.0.0", Port: 8080, ShutdownTimeout: 5 * time.Second},
		HTTP:   config.HTTPConfig{RequestTimeout: 5 * time.Second},
		Postgres: config.PostgresConfig{
			Host:           "localhost",
			Port:           port,
			User:           "postgres",
			Password:       "postgres",
			DBName:         "collaborate_space_db",
			SSLMode:        "disable",
			MigrationsDir:  migrationsDir,
			QueryTimeout:   10 * time.Second,
			MigrateTimeout: 20 * time.Second,
			MaxConns:       4,
			MinConns:       1,
		},
	}

	require.NoError(t, pool.Retry(func() error {
		db, err := sql.Open("postgres", "host=localhost port="+hostPort+" user=postgres password=postgres dbname=collaborate_space_db sslmode=disable")
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()
		return db.Ping()
	}))

	cleanup := func() {
		_ = pool.Purge(resource)
	}

	return cfg, cleanup
}

func testLogger(t *testing.T) *zap.SugaredLogger {
	t.Helper()

	l, _ := zap.NewDevelopment()
	t.Cleanup(func() { _ = l.Sync() })
	return l.Sugar()
}
