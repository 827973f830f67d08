package services

import (
	"context"
	"io"
	"strconv"
	"strings"
	"sync"
	"time"

	"hireboard_backend/internal/models"
	"hireboard_backend/internal/notify"
	"hireboard_backend/internal/repositories"
)

type fakeJobRepo struct {
	jobs map[string]*models.JobPosition
	seq  int
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: make(map[string]*models.JobPosition)}
}

func (r *fakeJobRepo) CreateWithFields(ctx context.Context, job *models.JobPosition, fields []models.FormField) error {
	if job.ID == "" {
		r.seq++
		job.ID = "job-" + strconv.Itoa(r.seq)
	}
	job.CreatedAt = time.Now()
	for i := range fields {
		fields[i].JobPositionID = job.ID
	}
	job.FormFields = fields
	r.jobs[job.ID] = job
	return nil
}

func (r *fakeJobRepo) FindByID(ctx context.Context, id string) (*models.JobPosition, error) {
	job, ok := r.jobs[id]
	if !ok {
		return nil, repositories.ErrJobNotFound
	}
	return job, nil
}

func (r *fakeJobRepo) FindByIDWithFields(ctx context.Context, id string) (*models.JobPosition, error) {
	return r.FindByID(ctx, id)
}

func (r *fakeJobRepo) ListActive(ctx context.Context) ([]models.JobPosition, error) {
	var out []models.JobPosition
	for _, job := range r.jobs {
		if job.IsActive {
			out = append(out, *job)
		}
	}
	return out, nil
}

func (r *fakeJobRepo) ListAll(ctx context.Context) ([]models.JobPosition, error) {
	var out []models.JobPosition
	for _, job := range r.jobs {
		out = append(out, *job)
	}
	return out, nil
}

func (r *fakeJobRepo) Update(ctx context.Context, job *models.JobPosition) error {
	if _, ok := r.jobs[job.ID]; !ok {
		return repositories.ErrJobNotFound
	}
	r.jobs[job.ID] = job
	return nil
}

func (r *fakeJobRepo) SetActive(ctx context.Context, id string, active bool) error {
	job, ok := r.jobs[id]
	if !ok {
		return repositories.ErrJobNotFound
	}
	job.IsActive = active
	return nil
}

func (r *fakeJobRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.jobs[id]; !ok {
		return repositories.ErrJobNotFound
	}
	delete(r.jobs, id)
	return nil
}

type fakeFieldRepo struct {
	jobs *fakeJobRepo
}

func (r *fakeFieldRepo) ListByJob(ctx context.Context, jobID string) ([]models.FormField, error) {
	job, err := r.jobs.FindByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	return job.FormFields, nil
}

func (r *fakeFieldRepo) CountByJob(ctx context.Context, jobID string) (int64, error) {
	fields, err := r.ListByJob(ctx, jobID)
	if err != nil {
		return 0, err
	}
	return int64(len(fields)), nil
}

func (r *fakeFieldRepo) ReplaceForJob(ctx context.Context, jobID string, fields []models.FormField) error {
	job, err := r.jobs.FindByID(ctx, jobID)
	if err != nil {
		return err
	}
	job.FormFields = fields
	return nil
}

type fakeAppRepo struct {
	apps     map[string]*models.Application
	jobs     *fakeJobRepo
	profiles *fakeProfileRepo
	seq      int
}

func newFakeAppRepo(jobs *fakeJobRepo, profiles *fakeProfileRepo) *fakeAppRepo {
	return &fakeAppRepo{apps: make(map[string]*models.Application), jobs: jobs, profiles: profiles}
}

func (r *fakeAppRepo) Create(ctx context.Context, app *models.Application) error {
	for _, existing := range r.apps {
		if existing.JobPositionID == app.JobPositionID && existing.ApplicantID == app.ApplicantID {
			return repositories.ErrDuplicateApplication
		}
	}
	r.seq++
	app.ID = "app-" + strconv.Itoa(r.seq)
	app.CreatedAt = time.Now()
	r.apps[app.ID] = app
	return nil
}

func (r *fakeAppRepo) FindByID(ctx context.Context, id string) (*models.Application, error) {
	app, ok := r.apps[id]
	if !ok {
		return nil, repositories.ErrApplicationNotFound
	}
	return app, nil
}

func (r *fakeAppRepo) FindByIDWithDetails(ctx context.Context, id string) (*models.Application, error) {
	app, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if job, ok := r.jobs.jobs[app.JobPositionID]; ok {
		app.JobPosition = job
	}
	if r.profiles != nil {
		if p, ok := r.profiles.profiles[app.ApplicantID]; ok {
			app.Applicant = p
		}
	}
	return app, nil
}

func (r *fakeAppRepo) ExistsByJobAndApplicant(ctx context.Context, jobID, applicantID string) (bool, error) {
	for _, app := range r.apps {
		if app.JobPositionID == jobID && app.ApplicantID == applicantID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeAppRepo) CountByJob(ctx context.Context, jobID string) (int64, error) {
	var count int64
	for _, app := range r.apps {
		if app.JobPositionID == jobID {
			count++
		}
	}
	return count, nil
}

func (r *fakeAppRepo) ListByApplicant(ctx context.Context, applicantID string) ([]models.Application, error) {
	var out []models.Application
	for _, app := range r.apps {
		if app.ApplicantID == applicantID {
			copied := *app
			if job, ok := r.jobs.jobs[app.JobPositionID]; ok {
				copied.JobPosition = job
			}
			out = append(out, copied)
		}
	}
	return out, nil
}

func (r *fakeAppRepo) ListByJob(ctx context.Context, jobID string) ([]models.Application, error) {
	var out []models.Application
	for _, app := range r.apps {
		if app.JobPositionID == jobID {
			out = append(out, *app)
		}
	}
	return out, nil
}

func (r *fakeAppRepo) ListAll(ctx context.Context) ([]models.Application, error) {
	var out []models.Application
	for _, app := range r.apps {
		copied := *app
		if job, ok := r.jobs.jobs[app.JobPositionID]; ok {
			copied.JobPosition = job
		}
		out = append(out, copied)
	}
	return out, nil
}

func (r *fakeAppRepo) UpdateStatus(ctx context.Context, id string, status models.ApplicationStatus) error {
	app, ok := r.apps[id]
	if !ok {
		return repositories.ErrApplicationNotFound
	}
	app.Status = status
	return nil
}

type fakeProfileRepo struct {
	profiles map[string]*models.Profile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: make(map[string]*models.Profile)}
}

func (r *fakeProfileRepo) Create(ctx context.Context, profile *models.Profile) error {
	for _, p := range r.profiles {
		if p.Email == profile.Email {
			return repositories.ErrProfileAlreadyExists
		}
	}
	if profile.ID == "" {
		profile.ID = "profile-" + strconv.Itoa(len(r.profiles)+1)
	}
	r.profiles[profile.ID] = profile
	return nil
}

func (r *fakeProfileRepo) FindByID(ctx context.Context, id string) (*models.Profile, error) {
	p, ok := r.profiles[id]
	if !ok {
		return nil, repositories.ErrProfileNotFound
	}
	return p, nil
}

func (r *fakeProfileRepo) FindByEmail(ctx context.Context, email string) (*models.Profile, error) {
	for _, p := range r.profiles {
		if p.Email == email {
			return p, nil
		}
	}
	return nil, repositories.ErrProfileNotFound
}

func (r *fakeProfileRepo) Update(ctx context.Context, profile *models.Profile) error {
	r.profiles[profile.ID] = profile
	return nil
}

func (r *fakeProfileRepo) UpdatePhotoURL(ctx context.Context, id string, photoURL string) error {
	p, ok := r.profiles[id]
	if !ok {
		return repositories.ErrProfileNotFound
	}
	p.ProfilePhotoURL = &photoURL
	return nil
}

// fakeStorage records saves and hands out deterministic URLs.
type fakeStorage struct {
	saved map[string][]byte
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{saved: make(map[string][]byte)}
}

func (s *fakeStorage) Save(ctx context.Context, path string, reader io.Reader, contentType string) error {
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	s.saved[path] = data
	return nil
}

func (s *fakeStorage) Get(ctx context.Context, path string) (io.ReadCloser, error) {
	data, ok := s.saved[path]
	if !ok {
		return nil, io.ErrUnexpectedEOF
	}
	return io.NopCloser(strings.NewReader(string(data))), nil
}

func (s *fakeStorage) Delete(ctx context.Context, path string) error {
	delete(s.saved, path)
	return nil
}

func (s *fakeStorage) GetURL(ctx context.Context, path string) (string, error) {
	return "/api/v1/files/" + path, nil
}

func (s *fakeStorage) GetSignedURL(ctx context.Context, path string, expiry time.Duration) (string, error) {
	return "https://signed.example.com/" + path, nil
}

// captureNotifier records status change notifications.
type captureNotifier struct {
	mu      sync.Mutex
	changes []notify.StatusChange
}

func (n *captureNotifier) StatusChanged(change notify.StatusChange) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.changes = append(n.changes, change)
	return nil
}

func (n *captureNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.changes)
}

func (n *captureNotifier) last() notify.StatusChange {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.changes[len(n.changes)-1]
}
