package download

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ytget/bouquet-updater/internal/model"
	"github.com/ytget/bouquet-updater/internal/platform"
)

// Download constants
const (
	TaskIDPrefix     = "task-"
	ProgressInterval = 250 * time.Millisecond
	CopyBufferSize   = 32 * 1024
)

// Service handles archive downloads
type Service struct {
	httpClient *http.Client
	tasks      map[string]*model.DownloadTask
	tasksMutex sync.RWMutex
	onUpdate   func(*model.DownloadTask) // callback for UI updates
}

// NewService creates a new download service. A nil client uses http.DefaultClient.
func NewService(httpClient *http.Client) *Service {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Service{
		httpClient: httpClient,
		tasks:      make(map[string]*model.DownloadTask),
	}
}

// SetUpdateCallback sets the callback function for task updates
func (s *Service) SetUpdateCallback(callback func(*model.DownloadTask)) {
	s.onUpdate = callback
}

// Download fetches url into dest, blocking until the body is fully written.
// The returned task is non-nil even on failure.
func (s *Service) Download(ctx context.Context, url, dest string) (*model.DownloadTask, error) {
	task := &model.DownloadTask{
		ID:         generateTaskID(),
		URL:        url,
		Status:     model.TaskStatusPending,
		ETASec:     -1,
		BytesTotal: -1,
		OutputPath: dest,
		StartedAt:  time.Now(),
	}

	s.tasksMutex.Lock()
	s.tasks[task.ID] = task
	s.tasksMutex.Unlock()

	log.Printf("Downloading %s -> %s (task %s)", url, dest, task.ID)

	if err := s.run(ctx, task); err != nil {
		s.setTaskError(task, err)
		return task, err
	}

	s.tasksMutex.Lock()
	task.Status = model.TaskStatusCompleted
	task.Progress = 1.0
	task.Percent = 100
	task.ETASec = 0
	task.FinishedAt = time.Now()
	s.tasksMutex.Unlock()
	s.notifyUpdate(task)

	log.Printf("Download finished: %s (%d bytes)", dest, task.BytesDone)
	return task, nil
}

func (s *Service) run(ctx context.Context, task *model.DownloadTask) error {
	s.setStatus(task, model.TaskStatusStarting)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, task.URL, nil)
	if err != nil {
		return model.NewError(model.KindNetwork, "build download request", task.URL, err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return model.NewError(model.KindNetwork, "download", task.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return model.NewError(model.KindNetwork, "download", task.URL,
			fmt.Errorf("unexpected status %s", resp.Status))
	}

	if err := platform.CreateDirectoryIfNotExists(filepath.Dir(task.OutputPath)); err != nil {
		return model.NewError(model.KindIO, "create download directory", filepath.Dir(task.OutputPath), err)
	}

	out, err := os.Create(task.OutputPath)
	if err != nil {
		return model.NewError(model.KindIO, "create archive file", task.OutputPath, err)
	}

	s.tasksMutex.Lock()
	task.BytesTotal = resp.ContentLength
	task.Status = model.TaskStatusDownloading
	s.tasksMutex.Unlock()
	s.notifyUpdate(task)

	_, copyErr := s.copyWithProgress(out, resp.Body, task)
	closeErr := out.Close()

	if copyErr != nil {
		return copyErr
	}
	if closeErr != nil {
		return model.NewError(model.KindIO, "close archive file", task.OutputPath, closeErr)
	}
	return nil
}

// copyWithProgress copies body into out, reporting progress at most every
// ProgressInterval
func (s *Service) copyWithProgress(out io.Writer, body io.Reader, task *model.DownloadTask) (int64, error) {
	buf := make([]byte, CopyBufferSize)
	var written int64
	lastReport := time.Time{}

	for {
		n, readErr := body.Read(buf)
		if n > 0 {
			if _, err := out.Write(buf[:n]); err != nil {
				return written, model.NewError(model.KindIO, "write archive file", task.OutputPath, err)
			}
			written += int64(n)

			now := time.Now()
			if now.Sub(lastReport) >= ProgressInterval {
				lastReport = now
				s.tasksMutex.Lock()
				task.UpdateProgress(written, now)
				s.tasksMutex.Unlock()
				s.notifyUpdate(task)
			}
		}
		if readErr == io.EOF {
			s.tasksMutex.Lock()
			task.UpdateProgress(written, time.Now())
			s.tasksMutex.Unlock()
			return written, nil
		}
		if readErr != nil {
			return written, model.NewError(model.KindNetwork, "read archive body", task.URL, readErr)
		}
	}
}

// GetTask returns a task by ID
func (s *Service) GetTask(id string) (*model.DownloadTask, bool) {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()
	task, exists := s.tasks[id]
	return task, exists
}

// GetAllTasks returns all tasks, oldest first
func (s *Service) GetAllTasks() []*model.DownloadTask {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()

	tasks := make([]*model.DownloadTask, 0, len(s.tasks))
	for _, task := range s.tasks {
		tasks = append(tasks, task)
	}
	sort.Slice(tasks, func(i, j int) bool {
		return tasks[i].StartedAt.Before(tasks[j].StartedAt)
	})
	return tasks
}

func (s *Service) setStatus(task *model.DownloadTask, status model.TaskStatus) {
	s.tasksMutex.Lock()
	task.Status = status
	s.tasksMutex.Unlock()
	s.notifyUpdate(task)
}

// setTaskError sets an error state for a task
func (s *Service) setTaskError(task *model.DownloadTask, err error) {
	s.tasksMutex.Lock()
	task.Status = model.TaskStatusError
	task.LastError = err.Error()
	task.FinishedAt = time.Now()
	s.tasksMutex.Unlock()

	log.Printf("Download failed for task %s: %v", task.ID, err)
	s.notifyUpdate(task)
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(task *model.DownloadTask) {
	if s.onUpdate != nil {
		s.onUpdate(task)
	}
}

// generateTaskID generates a unique task ID using UUID v7 for time ordering
func generateTaskID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf(TaskIDPrefix+"%d", time.Now().UnixNano())
	}
	return TaskIDPrefix + id.String()
}
