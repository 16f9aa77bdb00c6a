package usecase

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"go-portfolio-backend/internal/content"
	"go-portfolio-backend/internal/domain"

	"github.com/samber/lo"
)

// ImageSource turns an image path into an embeddable data URI.
type ImageSource interface {
	DataURI(path string) string
}

type portfolioUsecase struct {
	images    ImageSource
	assetsDir string
	now       func() time.Time
}

// NewPortfolioUsecase creates the static content usecase. Images are looked
// up under assetsDir: profile at the root, projects/ and icons/ below it.
func NewPortfolioUsecase(images ImageSource, assetsDir string) domain.PortfolioUsecase {
	return &portfolioUsecase{
		images:    images,
		assetsDir: assetsDir,
		now:       time.Now,
	}
}

func (u *portfolioUsecase) GetPortfolio(ctx context.Context) (*domain.Portfolio, error) {
	skills, err := u.GetSkills(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.Portfolio{
		Profile: domain.Profile{
			Greeting: content.ProfileGreeting,
			Name:     content.OwnerName,
			Title:    content.ProfileTitle,
			Summary:  content.ProfileSummary,
			Image:    u.images.DataURI(filepath.Join(u.assetsDir, content.ProfileImage)),
		},
		About: domain.About{
			Heading:    content.AboutHeading,
			Paragraphs: content.AboutParagraphs(),
		},
		Education: content.Education(),
		Experience: lo.Map(content.Experience(), func(e content.ExperienceEntry, _ int) domain.Experience {
			return domain.Experience{
				Title:        e.Title,
				Company:      e.Company,
				Duration:     e.Duration,
				Domain:       e.Domain,
				Technologies: e.Technologies,
				Highlights:   content.ParseHighlights(e.Description),
			}
		}),
		Skills: *skills,
		Projects: lo.Map(content.Projects(), func(p content.ProjectEntry, _ int) domain.Project {
			return domain.Project{
				Title:       p.Title,
				Description: p.Description,
				Image:       u.images.DataURI(filepath.Join(u.assetsDir, "projects", p.ImageFile)),
				Link:        p.Link,
			}
		}),
		Platforms: lo.Map(content.Platforms(), func(p content.LinkEntry, _ int) domain.Platform {
			return domain.Platform{
				Title:       p.Title,
				Description: p.Description,
				Icon:        u.icon(p.IconFile),
				Link:        p.Link,
			}
		}),
		ContactDetails: lo.Map(content.ContactDetails(), func(c content.ContactEntry, _ int) domain.ContactDetail {
			return domain.ContactDetail{
				Label: c.Label,
				Value: c.Value,
				Href:  c.Href,
				Icon:  u.icon(c.IconFile),
			}
		}),
		Footer: domain.Footer{
			Copyright: fmt.Sprintf("© %d %s. All Rights Reserved.", u.now().Year(), content.OwnerName),
			Links: lo.Map(content.FooterLinks(), func(l content.LinkEntry, _ int) domain.FooterLink {
				return domain.FooterLink{Title: l.Title, Href: l.Link, Icon: u.icon(l.IconFile)}
			}),
		},
	}, nil
}

func (u *portfolioUsecase) GetSkills(ctx context.Context) (*domain.SkillsSection, error) {
	return &domain.SkillsSection{
		Chart:     content.BuildSkillChart(content.SkillChartTitle, content.TechnicalSkills()),
		Languages: content.Languages(),
	}, nil
}

func (u *portfolioUsecase) icon(file string) string {
	return u.images.DataURI(filepath.Join(u.assetsDir, "icons", file))
}
