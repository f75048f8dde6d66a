package docsystem

import (
	"context"
	"errors"
	"strings"
	"testing"

	"dochub/internal/domain"
	docsysSvc "dochub/internal/domain/services/docsystem"
)

func uploadFile(name, content, contentType string) docsysSvc.UploadedFile {
	return docsysSvc.UploadedFile{
		Filename:    name,
		ContentType: contentType,
		Size:        int64(len(content)),
		Content:     strings.NewReader(content),
	}
}

func TestUpload_RecordsDocuments(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	root := f.store.addFolder(nil, "root", "root", baseTime)
	f.store.addFolder(&root.ID, "a", "root/a", baseTime)
	f.store.addFolder(&root.ID, "b", "root/b", baseTime)
	f.store.addFolder(&root.ID, "c", "root/c", baseTime)
	target := f.store.addFolder(&root.ID, "Reports", "root/Reports", baseTime)
	if target.ID != 5 {
		t.Fatalf("seeded folder id = %d, want 5", target.ID)
	}

	docs, err := f.upload.Upload(ctx, &docsysSvc.UploadRequest{
		FolderID:  int64Ptr(5),
		CreatedBy: int64Ptr(1),
		Files: []docsysSvc.UploadedFile{
			uploadFile("q1.pdf", "pdf-bytes", "application/pdf"),
			uploadFile("notes.txt", "hello", ""),
		},
	})
	if err != nil {
		t.Fatalf("Upload() error = %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("documents = %d, want 2", len(docs))
	}

	for _, doc := range docs {
		if doc.FolderID != 5 || doc.CreatedBy == nil || *doc.CreatedBy != 1 {
			t.Errorf("doc %q folder=%d createdBy=%v, want 5 and 1", doc.Name, doc.FolderID, doc.CreatedBy)
		}
	}
	if docs[0].FilePath != "Reports/q1.pdf" || docs[0].FileType != "application/pdf" || docs[0].Size != 9 {
		t.Errorf("first doc = %+v", docs[0])
	}
	if docs[1].FileType != "application/octet-stream" || docs[1].Size != 5 {
		t.Errorf("second doc = %+v", docs[1])
	}
	if string(f.blobs.blobs["Reports/notes.txt"]) != "hello" {
		t.Errorf("blob content = %q, want hello", f.blobs.blobs["Reports/notes.txt"])
	}
	if n := len(f.store.documents); n != 2 {
		t.Errorf("document rows = %d, want 2", n)
	}
}

func TestUpload_DefaultsToRoot(t *testing.T) {
	f := newFixture()
	docs, err := f.upload.Upload(context.Background(), &docsysSvc.UploadRequest{
		Files: []docsysSvc.UploadedFile{uploadFile(`C:\Users\me\report.doc`, "x", "")},
	})
	if err != nil {
		t.Fatalf("Upload() error = %v", err)
	}
	root, err := f.folders.GetRootFolder(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if docs[0].FolderID != root.ID || docs[0].Name != "report.doc" || docs[0].FilePath != "report.doc" {
		t.Errorf("doc = %+v, want report.doc in root %d", docs[0], root.ID)
	}
}

func TestUpload_Errors(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(f *fixture)
		req     docsysSvc.UploadRequest
		wantErr error
	}{
		{
			name:    "no files",
			req:     docsysSvc.UploadRequest{},
			wantErr: domain.ErrValidation,
		},
		{
			name:    "unusable file name",
			req:     docsysSvc.UploadRequest{Files: []docsysSvc.UploadedFile{uploadFile("../", "x", "")}},
			wantErr: domain.ErrValidation,
		},
		{
			name:    "unknown folder",
			req:     docsysSvc.UploadRequest{FolderID: int64Ptr(9999), Files: []docsysSvc.UploadedFile{uploadFile("a.txt", "x", "")}},
			wantErr: domain.ErrNotFound,
		},
		{
			name:    "blob write fails",
			setup:   func(f *fixture) { f.blobs.failPut = true },
			req:     docsysSvc.UploadRequest{Files: []docsysSvc.UploadedFile{uploadFile("a.txt", "x", "")}},
			wantErr: domain.ErrStorage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			if tt.setup != nil {
				tt.setup(f)
			}
			_, err := f.upload.Upload(context.Background(), &tt.req)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Upload() error = %v, want %v", err, tt.wantErr)
			}
			if n := len(f.store.documents); n != 0 {
				t.Errorf("document rows = %d, want 0", n)
			}
		})
	}
}

func TestUpload_RowFailureRemovesBlob(t *testing.T) {
	f := newFixture()
	f.store.addFolder(nil, "root", "root", baseTime)
	f.store.failDocCreate = true

	_, err := f.upload.Upload(context.Background(), &docsysSvc.UploadRequest{
		Files: []docsysSvc.UploadedFile{uploadFile("a.txt", "x", "")},
	})
	if !errors.Is(err, domain.ErrStorage) {
		t.Fatalf("Upload() error = %v, want ErrStorage", err)
	}
	if !strings.Contains(err.Error(), "a.txt") {
		t.Errorf("error %q should name the file", err)
	}
	if _, ok := f.blobs.blobs["a.txt"]; ok {
		t.Error("orphaned blob should be removed")
	}
}

func TestUpload_LaterFailureKeepsEarlierFiles(t *testing.T) {
	f := newFixture()
	root := f.store.addFolder(nil, "root", "root", baseTime)
	f.blobs.failPutKey = "second.txt"

	_, err := f.upload.Upload(context.Background(), &docsysSvc.UploadRequest{
		FolderID: &root.ID,
		Files: []docsysSvc.UploadedFile{
			uploadFile("first.txt", "one", ""),
			uploadFile("second.txt", "two", ""),
		},
	})
	if !errors.Is(err, domain.ErrStorage) {
		t.Fatalf("Upload() error = %v, want ErrStorage", err)
	}
	if !strings.Contains(err.Error(), "second.txt") {
		t.Errorf("error %q should name second.txt", err)
	}
	if n := len(f.store.documents); n != 1 || f.store.documents[0].Name != "first.txt" {
		t.Errorf("document rows = %+v, want only first.txt", f.store.documents)
	}
	if len(f.blobs.blobs) != 1 || string(f.blobs.blobs["first.txt"]) != "one" {
		t.Errorf("blobs = %v, want only first.txt", f.blobs.blobs)
	}
}

func TestCountingReader(t *testing.T) {
	c := &countingReader{r: strings.NewReader("twelve bytes")}
	buf := make([]byte, 5)
	for {
		if _, err := c.Read(buf); err != nil {
			break
		}
	}
	if c.n != 12 {
		t.Errorf("counted %d bytes, want 12", c.n)
	}
}
