package driver

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"runtime"
	"slices"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"monkey/internal/diag"
	"monkey/internal/observ"
	"monkey/internal/pipeline"
	"monkey/internal/source"
)

// DefaultExtensions: расширения исходников, если конфиг не задал свои.
var DefaultExtensions = []string{".mk", ".monkey"}

// ParseDirResult содержит результат парсинга одного файла
type ParseDirResult struct {
	Path   string        // Путь к файлу
	FileID source.FileID // ID файла в общем FileSet
	Result *ParseResult  // nil, если файл не загрузился
	Bag    *diag.Bag     // Диагностики (включая IO4001)
}

// ListFiles возвращает отсортированный список исходников в директории
func ListFiles(dir string, exts []string) ([]string, error) {
	if len(exts) == 0 {
		exts = DefaultExtensions
	}
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := filepath.Ext(path)
		if slices.ContainsFunc(exts, func(e string) bool { return strings.EqualFold(e, ext) }) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}

	// Сортируем для детерминированного порядка
	slices.Sort(files)
	return files, nil
}

// ParseDir парсит все исходники директории параллельно.
// Каждый файл получает собственные лексер, парсер и Bag; результаты идут в порядке путей.
func ParseDir(ctx context.Context, dir string, maxDiagnostics, jobs int, exts []string, sink pipeline.ProgressSink) (*source.FileSet, []ParseDirResult, error) {
	files, err := ListFiles(dir, exts)
	if err != nil {
		return nil, nil, err
	}
	return ParseFiles(ctx, files, maxDiagnostics, jobs, sink)
}

// ParseFiles parses an explicit list of files in parallel.
func ParseFiles(ctx context.Context, files []string, maxDiagnostics, jobs int, sink pipeline.ProgressSink) (*source.FileSet, []ParseDirResult, error) {
	fileSet := source.NewFileSet()
	if len(files) == 0 {
		return fileSet, nil, nil
	}
	if _, err := maxErrorsFor(maxDiagnostics); err != nil {
		return nil, nil, err
	}

	ctx, span := tracedPass(ctx, "parse-dir")
	defer span.End("")
	span.WithExtra("files", strconv.Itoa(len(files)))

	for _, path := range files {
		pipeline.Emit(sink, pipeline.Event{File: path, Stage: pipeline.StageLoad, Status: pipeline.StatusQueued})
	}

	// FileSet не потокобезопасен: загружаем всё заранее, последовательно
	fileIDs := make([]source.FileID, len(files))
	loadErrors := make(map[int]error)
	loadTimes := make([]time.Duration, len(files))
	for i, path := range files {
		start := time.Now()
		fileID, loadErr := fileSet.Load(path)
		loadTimes[i] = time.Since(start)
		if loadErr != nil {
			// Пустой виртуальный файл, чтобы диагностика указывала на путь
			fileID = fileSet.AddVirtual(path, nil)
			loadErrors[i] = loadErr
		}
		fileIDs[i] = fileID
	}

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Результаты (индексы уникальны для каждой горутины, мьютекс не нужен)
	results := make([]ParseDirResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			fileID := fileIDs[i]
			if loadErr, failed := loadErrors[i]; failed {
				bag := diag.NewBag(maxDiagnostics)
				primary := source.Span{File: fileID}
				diag.ReportError(diag.BagReporter{Bag: bag}, diag.IOLoadFileError, primary,
					"failed to load file: "+loadErr.Error()).Emit()
				results[i] = ParseDirResult{Path: path, FileID: fileID, Bag: bag}
				pipeline.Emit(sink, pipeline.Event{
					File: path, Stage: pipeline.StageLoad, Status: pipeline.StatusError, Err: loadErr,
				})
				return nil
			}

			pipeline.Emit(sink, pipeline.Event{File: path, Stage: pipeline.StageParse, Status: pipeline.StatusWorking})
			timer := observ.NewTimer()
			timer.Record("load", loadTimes[i], "")

			start := time.Now()
			res, parseErr := parseFile(gctx, fileSet, fileSet.Get(fileID), maxDiagnostics, timer)
			if parseErr != nil {
				return parseErr
			}

			status := pipeline.StatusDone
			if res.Bag.HasErrors() {
				status = pipeline.StatusError
			}
			pipeline.Emit(sink, pipeline.Event{
				File: path, Stage: pipeline.StageParse, Status: status, Elapsed: time.Since(start),
			})
			results[i] = ParseDirResult{Path: path, FileID: fileID, Result: res, Bag: res.Bag}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}
