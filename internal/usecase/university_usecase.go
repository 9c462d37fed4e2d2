package usecase

import (
	"context"
	"log"

	"degree-compass/internal/repository"
)

type UniversityDegree struct {
	ProgramID         int
	Titles            []repository.DegreeTitle
	DegreeType        string
	Language          string
	DurationSemesters string
	TotalECTS         string
	CourseCount       int
}

type UniversityUsecase interface {
	ListUniversities(ctx context.Context) ([]repository.University, error)
	ListDegrees(ctx context.Context, universityID int) ([]UniversityDegree, error)
	Metrics(ctx context.Context, universityID int) (repository.UniversityMetrics, error)
}

type UniversityProgramRepo interface {
	ListByUniversity(ctx context.Context, universityID int) ([]repository.Program, error)
}

type UniversityCourseRepo interface {
	ListByUniversity(ctx context.Context, universityID int) ([]repository.Course, error)
}

type University struct {
	universities repository.UniversityRepository
	programs     UniversityProgramRepo
	courses      UniversityCourseRepo
	logger       *log.Logger
}

func NewUniversityUsecase(universities repository.UniversityRepository, programs UniversityProgramRepo, courses UniversityCourseRepo, logger *log.Logger) *University {
	if logger == nil {
		logger = log.Default()
	}
	return &University{universities: universities, programs: programs, courses: courses, logger: logger}
}

func (u *University) ListUniversities(ctx context.Context) ([]repository.University, error) {
	list, err := u.universities.ListUniversities(ctx)
	if err != nil {
		u.logger.Printf("[University] listing failed: %v", err)
		return nil, ErrDataUnavailable
	}
	if list == nil {
		list = []repository.University{}
	}
	return list, nil
}

func (u *University) ListDegrees(ctx context.Context, universityID int) ([]UniversityDegree, error) {
	exists, err := u.universities.ExistsByID(ctx, universityID)
	if err != nil {
		u.logger.Printf("[University] existence check failed: %v", err)
		return nil, ErrDataUnavailable
	}
	if !exists {
		return nil, ErrUniversityNotFound
	}

	programs, err := u.programs.ListByUniversity(ctx, universityID)
	if err != nil {
		u.logger.Printf("[University] program listing failed: %v", err)
		return nil, ErrDataUnavailable
	}
	courses, err := u.courses.ListByUniversity(ctx, universityID)
	if err != nil {
		u.logger.Printf("[University] course listing failed: %v", err)
		return nil, ErrDataUnavailable
	}

	counts := map[int]int{}
	for _, c := range courses {
		if c.ProgramID != 0 {
			counts[c.ProgramID]++
		}
	}

	out := make([]UniversityDegree, 0, len(programs))
	for _, p := range programs {
		out = append(out, UniversityDegree{
			ProgramID:         p.ID,
			Titles:            p.Titles,
			DegreeType:        p.DegreeType,
			Language:          p.Language,
			DurationSemesters: p.DurationSemesters,
			TotalECTS:         p.TotalECTS,
			CourseCount:       counts[p.ID],
		})
	}
	return out, nil
}

func (u *University) Metrics(ctx context.Context, universityID int) (repository.UniversityMetrics, error) {
	exists, err := u.universities.ExistsByID(ctx, universityID)
	if err != nil {
		u.logger.Printf("[University] existence check failed: %v", err)
		return repository.UniversityMetrics{}, ErrDataUnavailable
	}
	if !exists {
		return repository.UniversityMetrics{}, ErrUniversityNotFound
	}

	metrics, err := u.universities.Metrics(ctx, universityID)
	if err != nil {
		u.logger.Printf("[University] metrics failed: %v", err)
		return repository.UniversityMetrics{}, ErrDataUnavailable
	}
	return metrics, nil
}
