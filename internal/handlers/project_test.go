package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/crewstack/project-management-api/internal/models"
	"github.com/crewstack/project-management-api/internal/repository"
	"github.com/crewstack/project-management-api/internal/services"
	"github.com/crewstack/project-management-api/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// ProjectHandlerTestSuite defines the test suite for ProjectHandler
type ProjectHandlerTestSuite struct {
	suite.Suite
	db             *gorm.DB
	handler        *ProjectHandler
	projectService *services.ProjectService
}

// SetupTest runs before each test
func (suite *ProjectHandlerTestSuite) SetupTest() {
	var err error

	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	suite.Require().NoError(err)

	err = suite.db.AutoMigrate(
		&models.User{},
		&models.Project{},
		&models.ProjectMember{},
		&models.Task{},
	)
	suite.Require().NoError(err)

	userRepo := repository.NewUserRepository(suite.db)
	projectRepo := repository.NewProjectRepository(suite.db)
	suite.projectService = services.NewProjectService(projectRepo, userRepo)
	suite.handler = NewProjectHandler(suite.projectService)

	gin.SetMode(gin.TestMode)
}

// TearDownTest runs after each test
func (suite *ProjectHandlerTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *ProjectHandlerTestSuite) createTestUser(email string, role models.UserRole) *models.User {
	user := &models.User{
		Name:         "Test",
		LastName:     "User",
		Email:        email,
		PasswordHash: "hashedpassword",
		Role:         role,
	}
	suite.db.Create(user)
	return user
}

func (suite *ProjectHandlerTestSuite) createTestProject(name string, creatorID uint64) *models.Project {
	project := &models.Project{
		Name:      name,
		CreatorID: creatorID,
		Status:    models.ProjectStatusActive,
	}
	suite.db.Create(project)
	return project
}

func (suite *ProjectHandlerTestSuite) countMembers(projectID uint64) int64 {
	var count int64
	suite.db.Model(&models.ProjectMember{}).Where("project_id = ?", projectID).Count(&count)
	return count
}

func (suite *ProjectHandlerTestSuite) TestCreateProject_Success() {
	admin := suite.createTestUser("admin@example.com", models.RoleAdmin)

	body := mustJSON(suite.T(), map[string]interface{}{
		"name":        "P1",
		"description": "First project",
	})
	c, w := newAuthContext("POST", "/project/create", body, admin.ID)

	suite.handler.CreateProject(c)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var response struct {
		Project struct {
			ID      uint64               `json:"id"`
			Name    string               `json:"name"`
			Status  models.ProjectStatus `json:"status"`
			Deleted bool                 `json:"deleted"`
		} `json:"project"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(suite.T(), "P1", response.Project.Name)
	// Status defaults to Active when omitted.
	assert.Equal(suite.T(), models.ProjectStatusActive, response.Project.Status)
	assert.False(suite.T(), response.Project.Deleted)
}

func (suite *ProjectHandlerTestSuite) TestCreateProject_NotAdmin() {
	worker := suite.createTestUser("worker@example.com", models.RoleWorker)

	// The empty name would also be invalid, but the role check comes
	// first and short-circuits.
	body := mustJSON(suite.T(), map[string]interface{}{"name": ""})
	c, w := newAuthContext("POST", "/project/create", body, worker.ID)

	suite.handler.CreateProject(c)

	assert.Equal(suite.T(), http.StatusForbidden, w.Code)

	var count int64
	suite.db.Model(&models.Project{}).Count(&count)
	assert.Zero(suite.T(), count)
}

func (suite *ProjectHandlerTestSuite) TestCreateProject_InvalidStatus() {
	admin := suite.createTestUser("admin@example.com", models.RoleAdmin)

	body := mustJSON(suite.T(), map[string]interface{}{
		"name":   "P1",
		"status": "Bogus",
	})
	c, w := newAuthContext("POST", "/project/create", body, admin.ID)

	suite.handler.CreateProject(c)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *ProjectHandlerTestSuite) TestUpdateProject_PartialUpdate() {
	admin := suite.createTestUser("admin@example.com", models.RoleAdmin)
	project := suite.createTestProject("P1", admin.ID)

	desc := "updated description"
	body := mustJSON(suite.T(), map[string]interface{}{
		"projectId":   project.ID,
		"description": desc,
	})
	c, w := newAuthContext("PUT", "/project/update", body, admin.ID)

	suite.handler.UpdateProject(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var stored models.Project
	suite.db.First(&stored, project.ID)
	// Omitted fields keep their stored value.
	assert.Equal(suite.T(), "P1", stored.Name)
	assert.Equal(suite.T(), desc, stored.Description)
}

func (suite *ProjectHandlerTestSuite) TestUpdateProject_NotFound() {
	admin := suite.createTestUser("admin@example.com", models.RoleAdmin)

	body := mustJSON(suite.T(), map[string]interface{}{
		"projectId": 12345,
		"name":      "renamed",
	})
	c, w := newAuthContext("PUT", "/project/update", body, admin.ID)

	suite.handler.UpdateProject(c)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *ProjectHandlerTestSuite) TestDeleteProject_SoftDelete() {
	admin := suite.createTestUser("admin@example.com", models.RoleAdmin)
	project := suite.createTestProject("P1", admin.ID)

	body := mustJSON(suite.T(), map[string]interface{}{"projectId": project.ID})
	c, w := newAuthContext("PUT", "/project/delete", body, admin.ID)

	suite.handler.DeleteProject(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	// Excluded from the default listing.
	projects, total, err := suite.projectService.ListProjects(false, utils.PaginationParams{Page: 1, Limit: 20})
	suite.Require().NoError(err)
	assert.Empty(suite.T(), projects)
	assert.Zero(suite.T(), total)

	// Still retrievable by direct lookup, with the flag set.
	stored, _, err := suite.projectService.GetProjectWithMembers(project.ID)
	suite.Require().NoError(err)
	assert.True(suite.T(), stored.Deleted)
}

func (suite *ProjectHandlerTestSuite) TestDeleteProject_NotAdmin() {
	admin := suite.createTestUser("admin@example.com", models.RoleAdmin)
	worker := suite.createTestUser("worker@example.com", models.RoleWorker)
	project := suite.createTestProject("P1", admin.ID)

	body := mustJSON(suite.T(), map[string]interface{}{"projectId": project.ID})
	c, w := newAuthContext("PUT", "/project/delete", body, worker.ID)

	suite.handler.DeleteProject(c)

	assert.Equal(suite.T(), http.StatusForbidden, w.Code)

	var stored models.Project
	suite.db.First(&stored, project.ID)
	assert.False(suite.T(), stored.Deleted)
}

func (suite *ProjectHandlerTestSuite) TestAssignWorkers_Idempotent() {
	admin := suite.createTestUser("admin@example.com", models.RoleAdmin)
	bob := suite.createTestUser("bob@example.com", models.RoleWorker)
	project := suite.createTestProject("P1", admin.ID)

	body := mustJSON(suite.T(), map[string]interface{}{
		"projectId": project.ID,
		"workerIds": []uint64{bob.ID, bob.ID},
	})
	c, w := newAuthContext("PUT", "/project/assign_worker", body, admin.ID)
	suite.handler.AssignWorkers(c)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	// Assigning again is a no-op, not an error.
	c, w = newAuthContext("PUT", "/project/assign_worker", body, admin.ID)
	suite.handler.AssignWorkers(c)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	assert.Equal(suite.T(), int64(1), suite.countMembers(project.ID))
}

func (suite *ProjectHandlerTestSuite) TestAssignWorkers_InvalidID() {
	admin := suite.createTestUser("admin@example.com", models.RoleAdmin)
	bob := suite.createTestUser("bob@example.com", models.RoleWorker)
	project := suite.createTestProject("P1", admin.ID)

	body := mustJSON(suite.T(), map[string]interface{}{
		"projectId": project.ID,
		"workerIds": []uint64{bob.ID, 9999},
	})
	c, w := newAuthContext("PUT", "/project/assign_worker", body, admin.ID)
	suite.handler.AssignWorkers(c)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	// No partial assignment happens.
	assert.Zero(suite.T(), suite.countMembers(project.ID))
}

func (suite *ProjectHandlerTestSuite) TestAssignAdmin() {
	admin := suite.createTestUser("admin@example.com", models.RoleAdmin)
	second := suite.createTestUser("second@example.com", models.RoleAdmin)
	project := suite.createTestProject("P1", admin.ID)

	body := mustJSON(suite.T(), map[string]interface{}{
		"projectId": project.ID,
		"adminId":   second.ID,
	})
	c, w := newAuthContext("PUT", "/project/assign_admin", body, admin.ID)
	suite.handler.AssignAdmin(c)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	// A duplicate admin assignment is an error.
	c, w = newAuthContext("PUT", "/project/assign_admin", body, admin.ID)
	suite.handler.AssignAdmin(c)
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *ProjectHandlerTestSuite) TestAssignAdmin_WorkerRole() {
	admin := suite.createTestUser("admin@example.com", models.RoleAdmin)
	bob := suite.createTestUser("bob@example.com", models.RoleWorker)
	project := suite.createTestProject("P1", admin.ID)

	body := mustJSON(suite.T(), map[string]interface{}{
		"projectId": project.ID,
		"adminId":   bob.ID,
	})
	c, w := newAuthContext("PUT", "/project/assign_admin", body, admin.ID)
	suite.handler.AssignAdmin(c)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Zero(suite.T(), suite.countMembers(project.ID))
}

func (suite *ProjectHandlerTestSuite) TestRemoveWorker() {
	admin := suite.createTestUser("admin@example.com", models.RoleAdmin)
	bob := suite.createTestUser("bob@example.com", models.RoleWorker)
	project := suite.createTestProject("P1", admin.ID)

	err := suite.projectService.AssignMembers(project.ID, []uint64{bob.ID}, models.MemberRoleWorker)
	suite.Require().NoError(err)

	body := mustJSON(suite.T(), map[string]interface{}{
		"projectId": project.ID,
		"workerId":  bob.ID,
	})
	c, w := newAuthContext("PUT", "/project/remove_worker", body, admin.ID)
	suite.handler.RemoveWorker(c)
	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Zero(suite.T(), suite.countMembers(project.ID))

	// Removing a member that is not in the list is an error.
	c, w = newAuthContext("PUT", "/project/remove_worker", body, admin.ID)
	suite.handler.RemoveWorker(c)
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *ProjectHandlerTestSuite) TestRemoveWorker_KeepsTasks() {
	admin := suite.createTestUser("admin@example.com", models.RoleAdmin)
	bob := suite.createTestUser("bob@example.com", models.RoleWorker)
	project := suite.createTestProject("P1", admin.ID)

	err := suite.projectService.AssignMembers(project.ID, []uint64{bob.ID}, models.MemberRoleWorker)
	suite.Require().NoError(err)

	task := &models.Task{
		Title:       "T1",
		Description: "desc",
		Status:      models.TaskStatusPending,
		ProjectID:   project.ID,
		AssignedTo:  bob.ID,
		CreatedBy:   admin.ID,
		UpdatedBy:   admin.ID,
	}
	suite.db.Create(task)

	body := mustJSON(suite.T(), map[string]interface{}{
		"projectId": project.ID,
		"workerId":  bob.ID,
	})
	c, w := newAuthContext("PUT", "/project/remove_worker", body, admin.ID)
	suite.handler.RemoveWorker(c)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	// Removal does not cascade: the task row keeps its assignee.
	var stored models.Task
	suite.db.First(&stored, task.ID)
	assert.Equal(suite.T(), bob.ID, stored.AssignedTo)
}

func TestProjectHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectHandlerTestSuite))
}
