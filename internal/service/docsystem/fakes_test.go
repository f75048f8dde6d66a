package docsystem

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"dochub/internal/domain"
	models "dochub/internal/domain/models/docsystem"
	"dochub/internal/domain/repositories"
	docsysSvc "dochub/internal/domain/services/docsystem"
)

// memStore backs the fake repositories. ExecTx snapshots it and restores
// the snapshot when fn fails.
type memStore struct {
	mu        sync.Mutex
	folders   []models.Folder
	documents []models.Document
	users     []models.User
	nextID    int64

	failDocCreate  bool
	failUserCreate error
	inTx           bool
}

func newMemStore() *memStore {
	return &memStore{nextID: 1}
}

func (m *memStore) id() int64 {
	id := m.nextID
	m.nextID++
	return id
}

func (m *memStore) ExecTx(ctx context.Context, fn repositories.TxFn) error {
	m.mu.Lock()
	if m.inTx {
		m.mu.Unlock()
		return fn(ctx)
	}
	m.inTx = true
	folders := append([]models.Folder(nil), m.folders...)
	documents := append([]models.Document(nil), m.documents...)
	users := append([]models.User(nil), m.users...)
	m.mu.Unlock()

	err := fn(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.inTx = false
	if err != nil {
		m.folders, m.documents, m.users = folders, documents, users
	}
	return err
}

func (m *memStore) creatorName(id *int64) *string {
	if id == nil {
		return nil
	}
	for _, u := range m.users {
		if u.ID == *id {
			name := u.Username
			return &name
		}
	}
	return nil
}

// addFolder seeds a folder directly, bypassing services
func (m *memStore) addFolder(parentID *int64, name, path string, createdAt time.Time) models.Folder {
	m.mu.Lock()
	defer m.mu.Unlock()
	f := models.Folder{ID: m.id(), ParentID: parentID, Name: name, Path: path, CreatedAt: createdAt, UpdatedAt: createdAt}
	m.folders = append(m.folders, f)
	return f
}

// addDocument seeds a document directly, bypassing services
func (m *memStore) addDocument(folderID int64, name string, size int64, createdAt time.Time) models.Document {
	m.mu.Lock()
	defer m.mu.Unlock()
	d := models.Document{ID: m.id(), FolderID: folderID, Name: name, Size: size, CreatedAt: createdAt, UpdatedAt: createdAt}
	m.documents = append(m.documents, d)
	return d
}

type fakeFolderRepo struct{ m *memStore }

func (r *fakeFolderRepo) Create(_ context.Context, folder *models.Folder) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if folder.ParentID != nil {
		found := false
		for _, f := range r.m.folders {
			if f.ID == *folder.ParentID {
				found = true
			}
		}
		if !found {
			return fmt.Errorf("parent folder %d: %w", *folder.ParentID, domain.ErrNotFound)
		}
	}
	folder.ID = r.m.id()
	r.m.folders = append(r.m.folders, *folder)
	return nil
}

func (r *fakeFolderRepo) GetByID(_ context.Context, id int64) (*models.Folder, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for _, f := range r.m.folders {
		if f.ID == id {
			f.CreatorName = r.m.creatorName(f.CreatedBy)
			return &f, nil
		}
	}
	return nil, fmt.Errorf("folder %d: %w", id, domain.ErrNotFound)
}

func (r *fakeFolderRepo) GetRootByPath(_ context.Context, path string) (*models.Folder, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for _, f := range r.m.folders {
		if f.ParentID == nil && f.Path == path {
			return &f, nil
		}
	}
	return nil, fmt.Errorf("root folder %q: %w", path, domain.ErrNotFound)
}

func (r *fakeFolderRepo) ListChildren(_ context.Context, parentID int64) ([]models.Folder, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	var out []models.Folder
	for _, f := range r.m.folders {
		if f.ParentID != nil && *f.ParentID == parentID {
			f.CreatorName = r.m.creatorName(f.CreatedBy)
			out = append(out, f)
		}
	}
	return out, nil
}

func (r *fakeFolderRepo) ListAll(_ context.Context) ([]models.Folder, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	return append([]models.Folder(nil), r.m.folders...), nil
}

type fakeDocumentRepo struct{ m *memStore }

func (r *fakeDocumentRepo) Create(_ context.Context, doc *models.Document) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if r.m.failDocCreate {
		return errors.New("insert failed")
	}
	doc.ID = r.m.id()
	r.m.documents = append(r.m.documents, *doc)
	return nil
}

func (r *fakeDocumentRepo) GetByID(_ context.Context, id int64) (*models.Document, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for _, d := range r.m.documents {
		if d.ID == id {
			return &d, nil
		}
	}
	return nil, fmt.Errorf("document %d: %w", id, domain.ErrNotFound)
}

func (r *fakeDocumentRepo) ListByFolder(_ context.Context, folderID int64) ([]models.Document, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	var out []models.Document
	for _, d := range r.m.documents {
		if d.FolderID == folderID {
			d.CreatorName = r.m.creatorName(d.CreatedBy)
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *fakeDocumentRepo) ListAll(_ context.Context) ([]models.Document, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	return append([]models.Document(nil), r.m.documents...), nil
}

type fakeUserRepo struct{ m *memStore }

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if r.m.failUserCreate != nil {
		return r.m.failUserCreate
	}
	for _, u := range r.m.users {
		if u.Email == user.Email {
			return fmt.Errorf("user %q: %w", user.Email, domain.ErrConflict)
		}
	}
	user.ID = r.m.id()
	r.m.users = append(r.m.users, *user)
	return nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for _, u := range r.m.users {
		if u.Email == strings.ToLower(email) {
			return &u, nil
		}
	}
	return nil, fmt.Errorf("user %q: %w", email, domain.ErrNotFound)
}

func (r *fakeUserRepo) Count(_ context.Context) (int64, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	return int64(len(r.m.users)), nil
}

// memBlobs records blob writes. failDir and failPutKey fail a single key;
// failPut fails every write.
type memBlobs struct {
	mu         sync.Mutex
	dirs       map[string]bool
	blobs      map[string][]byte
	failDir    string
	failPut    bool
	failPutKey string
}

func newMemBlobs() *memBlobs {
	return &memBlobs{dirs: map[string]bool{}, blobs: map[string][]byte{}}
}

func (b *memBlobs) EnsureDir(_ context.Context, dir string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.failDir != "" && dir == b.failDir {
		return errors.New("permission denied")
	}
	b.dirs[dir] = true
	return nil
}

func (b *memBlobs) Put(_ context.Context, key string, r io.Reader, _ int64, _ string) error {
	if b.failPut || (b.failPutKey != "" && key == b.failPutKey) {
		return errors.New("disk full")
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.blobs[key] = data
	return nil
}

func (b *memBlobs) Delete(_ context.Context, key string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.blobs, key)
	return nil
}

type stubTypes struct{}

func (stubTypes) Resolve(_ string, clientType string) string {
	if clientType == "" {
		return "application/octet-stream"
	}
	return clientType
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fixture wires every service against the in-memory store
type fixture struct {
	store   *memStore
	blobs   *memBlobs
	folders docsysSvc.FolderService
	listing docsysSvc.ListingService
	upload  docsysSvc.UploadService
	users   docsysSvc.UserService
	tree    docsysSvc.TreeService
}

const testRootPath = "root"

func newFixture() *fixture {
	store := newMemStore()
	blobs := newMemBlobs()
	folderRepo := &fakeFolderRepo{m: store}
	docRepo := &fakeDocumentRepo{m: store}
	userRepo := &fakeUserRepo{m: store}
	validator := NewResourceValidator(folderRepo)
	logger := testLogger()

	folderSvc := NewFolderService(folderRepo, blobs, store, validator, testRootPath, logger)
	return &fixture{
		store:   store,
		blobs:   blobs,
		folders: folderSvc,
		listing: NewListingService(folderRepo, docRepo, validator, logger),
		upload:  NewUploadService(docRepo, blobs, stubTypes{}, folderSvc, validator, testRootPath, logger),
		users:   NewUserService(userRepo, folderSvc, store, logger),
		tree:    NewTreeService(folderRepo, docRepo, validator, logger),
	}
}
