package app

import (
	"context"
	"log"
	"time"

	"degree-compass/internal/config"
	"degree-compass/internal/database"
	dbpostgres "degree-compass/internal/database/postgres"
	"degree-compass/internal/database/schema"
	"degree-compass/internal/infrastructure/cache"
	"degree-compass/internal/repository"
	"degree-compass/internal/usecase"
)

type Container struct {
	Config config.Config
	DB     database.DB
	Cache  *cache.Redis

	Universities usecase.UniversityUsecase
	Profiles     usecase.UniversityProfileUsecase
	Filters      usecase.FiltersUsecase
	SkillGroups  usecase.SkillGroupUsecase
	Personalized usecase.PersonalizedUsecase
	Electives    usecase.ElectiveUsecase
	Proposals    usecase.DegreeProposalUsecase
	DegreeCourse usecase.DegreeCourseUsecase
}

func NewContainer(cfg config.Config) (*Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}
	if err := schema.VerifyCatalog(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	cacheClient := cache.NewRedis(log.Default())
	ttl := cache.DefaultTTLFromEnv()

	universities := repository.NewPostgresUniversityRepository(db)
	programs := repository.NewPostgresProgramRepository(db)
	courses := repository.NewPostgresCourseRepository(db)
	skills := repository.NewPostgresSkillRepository(db)

	c := &Container{
		Config: cfg,
		DB:     db,
		Cache:  cacheClient,

		Universities: usecase.NewUniversityUsecase(universities, programs, courses, log.Default()),
		Profiles:     usecase.NewUniversityProfileUsecase(universities, programs, courses, skills, log.Default()),
		Filters:      usecase.NewFiltersUsecase(programs, courses, universities, cacheClient, ttl, log.Default()),
		SkillGroups:  usecase.NewSkillGroupUsecase(skills, log.Default()),
		Personalized: usecase.NewPersonalizedUsecase(programs, courses, skills, cacheClient, log.Default()),
		Electives:    usecase.NewElectiveUsecase(programs, courses, skills, log.Default()),
		Proposals:    usecase.NewDegreeProposalUsecase(universities, courses, skills, log.Default()),
		DegreeCourse: usecase.NewDegreeCourseUsecase(programs, courses, skills, log.Default()),
	}
	return c, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
