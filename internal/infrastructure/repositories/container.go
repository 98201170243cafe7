package repositories

import (
	"github.com/spf13/afero"
	"go.uber.org/dig"

	"github.com/rios0rios0/autostyle/internal/domain/entities"
	domainRepos "github.com/rios0rios0/autostyle/internal/domain/repositories"
	pep8Repo "github.com/rios0rios0/autostyle/internal/infrastructure/repositories/autopep8"
	typeRepo "github.com/rios0rios0/autostyle/internal/infrastructure/repositories/filetype"
	gitRepo "github.com/rios0rios0/autostyle/internal/infrastructure/repositories/git"
	hgRepo "github.com/rios0rios0/autostyle/internal/infrastructure/repositories/mercurial"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register the filesystem shared by discovery, detectors and fixers
	if err := container.Provide(afero.NewOsFs); err != nil {
		return err
	}

	// Register VCS registry; detection order is git, then mercurial
	if err := container.Provide(func() *VCSRegistry {
		reg := NewVCSRegistry()
		reg.Register(gitRepo.NewVCSRepository())
		reg.Register(hgRepo.NewVCSRepository())
		return reg
	}); err != nil {
		return err
	}

	// Register fixer registry with all fixer factories
	if err := container.Provide(func(fs afero.Fs) *FixerRegistry {
		reg := NewFixerRegistry()
		reg.Register(entities.FixerAutopep8, func(executable string) domainRepos.FixerRepository {
			return pep8Repo.NewFixerRepository(executable, fs)
		})
		return reg
	}); err != nil {
		return err
	}

	// Register detector registry with all file-type detectors
	if err := container.Provide(func(fs afero.Fs) *DetectorRegistry {
		reg := NewDetectorRegistry()
		reg.Register(entities.DetectorFile, typeRepo.NewFileCommandDetector())
		reg.Register(entities.DetectorShebang, typeRepo.NewShebangDetector(fs))
		return reg
	}); err != nil {
		return err
	}

	return nil
}
