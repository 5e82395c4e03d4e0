package service

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/akademika/lms-api/internal/aggregate"
	"github.com/akademika/lms-api/internal/dto"
	"github.com/akademika/lms-api/internal/gradescale"
	"github.com/akademika/lms-api/internal/models"
	appErrors "github.com/akademika/lms-api/pkg/errors"
	"github.com/akademika/lms-api/pkg/export"
)

// Export formats accepted by the report endpoints.
const (
	ExportFormatCSV = "csv"
	ExportFormatPDF = "pdf"
)

type distributionProvider interface {
	GradeDistribution(ctx context.Context, courseID string) (*dto.GradeDistributionReport, bool, error)
}

type studentGradeLister interface {
	ListByStudent(ctx context.Context, studentID string) ([]models.GradeRecord, error)
}

type studentEnrollmentLister interface {
	ListByStudent(ctx context.Context, studentID string) ([]models.EnrollmentRecord, error)
}

type coursesByIDsLister interface {
	ListByIDs(ctx context.Context, ids []string) ([]models.CourseSummary, error)
}

// ExportResult is a rendered report ready for download.
type ExportResult struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ExportService renders analytics reports as CSV or PDF downloads.
type ExportService struct {
	distributions distributionProvider
	grades        studentGradeLister
	enrollments   studentEnrollmentLister
	courses       coursesByIDsLister
	csv           *export.CSVExporter
	pdf           *export.PDFExporter
	logger        *zap.Logger
	maxRows       int
}

// NewExportService constructs an ExportService.
func NewExportService(distributions distributionProvider, grades studentGradeLister,
	enrollments studentEnrollmentLister, courses coursesByIDsLister,
	logger *zap.Logger, maxRows int) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if maxRows <= 0 {
		maxRows = 5000
	}
	return &ExportService{
		distributions: distributions,
		grades:        grades,
		enrollments:   enrollments,
		courses:       courses,
		csv:           export.NewCSVExporter(),
		pdf:           export.NewPDFExporter(),
		logger:        logger,
		maxRows:       maxRows,
	}
}

// GradeDistributionExport renders the per-course distribution as a download.
func (s *ExportService) GradeDistributionExport(ctx context.Context, courseID, format string) (*ExportResult, error) {
	report, _, err := s.distributions.GradeDistribution(ctx, courseID)
	if err != nil {
		return nil, err
	}

	dataset := export.Dataset{
		Headers: []string{"Letter", "Count", "Percentage"},
		Rows: [][]string{
			{"A", strconv.Itoa(report.Distribution.A), formatPercent(report.Percentages.A)},
			{"B", strconv.Itoa(report.Distribution.B), formatPercent(report.Percentages.B)},
			{"C", strconv.Itoa(report.Distribution.C), formatPercent(report.Percentages.C)},
			{"D", strconv.Itoa(report.Distribution.D), formatPercent(report.Percentages.D)},
			{"F", strconv.Itoa(report.Distribution.F), formatPercent(report.Percentages.F)},
		},
	}
	title := fmt.Sprintf("Grade Distribution %s", courseID)
	return s.render(dataset, title, fmt.Sprintf("grade-distribution-%s", courseID), format)
}

// Transcript composes a student's per-course transcript with overall GPA.
func (s *ExportService) Transcript(ctx context.Context, studentID string) (*dto.Transcript, error) {
	if studentID == "" {
		return nil, appErrors.Clone(appErrors.ErrMissingParameter, "student_id is required")
	}

	grades, err := s.grades.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	enrollments, err := s.enrollments.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	gpa, err := aggregate.ComputeGPA(grades)
	if err != nil {
		return nil, err
	}

	perCourse := make(map[string][]models.GradeRecord)
	for _, g := range grades {
		perCourse[g.CourseID] = append(perCourse[g.CourseID], g)
	}
	courseIDs := make([]string, 0, len(perCourse))
	for id := range perCourse {
		courseIDs = append(courseIDs, id)
	}
	sort.Strings(courseIDs)

	courses, err := s.courses.ListByIDs(ctx, courseIDs)
	if err != nil {
		return nil, err
	}
	courseInfo := make(map[string]models.CourseSummary, len(courses))
	for _, c := range courses {
		courseInfo[c.CourseID] = c
	}

	rows := make([]dto.TranscriptRow, 0, len(courseIDs))
	for _, id := range courseIDs {
		avg := aggregate.AverageScore(perCourse[id])
		letter, err := gradescale.LetterFor(avg)
		if err != nil {
			return nil, err
		}
		points, err := gradescale.PointFor(avg)
		if err != nil {
			return nil, err
		}
		row := dto.TranscriptRow{Score: avg, Letter: letter, Points: points}
		if info, ok := courseInfo[id]; ok {
			row.CourseCode = info.Code
			row.CourseName = info.Name
			row.CreditHours = info.CreditHours
		}
		rows = append(rows, row)
	}

	return &dto.Transcript{
		StudentID: studentID,
		GPA:       gpa,
		TotalSKS:  aggregate.ComputeTotalSKS(enrollments),
		Rows:      rows,
	}, nil
}

// TranscriptExport renders the transcript as a download.
func (s *ExportService) TranscriptExport(ctx context.Context, studentID, format string) (*ExportResult, error) {
	transcript, err := s.Transcript(ctx, studentID)
	if err != nil {
		return nil, err
	}

	rows := make([][]string, 0, len(transcript.Rows))
	for _, row := range transcript.Rows {
		if len(rows) >= s.maxRows {
			break
		}
		rows = append(rows, []string{
			row.CourseCode,
			row.CourseName,
			strconv.Itoa(row.CreditHours),
			strconv.FormatFloat(row.Score, 'f', 2, 64),
			string(row.Letter),
			strconv.FormatFloat(row.Points, 'f', 1, 64),
		})
	}
	dataset := export.Dataset{
		Headers: []string{"Course Code", "Course Name", "SKS", "Score", "Letter", "Points"},
		Rows:    rows,
	}
	title := fmt.Sprintf("Transcript %s (GPA %.2f)", studentID, transcript.GPA)
	return s.render(dataset, title, fmt.Sprintf("transcript-%s", studentID), format)
}

func (s *ExportService) render(dataset export.Dataset, title, baseName, format string) (*ExportResult, error) {
	stamp := time.Now().UTC().Format("20060102")
	switch format {
	case ExportFormatCSV, "":
		data, err := s.csv.Render(dataset)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv")
		}
		return &ExportResult{
			Filename:    fmt.Sprintf("%s-%s.csv", baseName, stamp),
			ContentType: "text/csv",
			Data:        data,
		}, nil
	case ExportFormatPDF:
		data, err := s.pdf.Render(dataset, title)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf")
		}
		return &ExportResult{
			Filename:    fmt.Sprintf("%s-%s.pdf", baseName, stamp),
			ContentType: "application/pdf",
			Data:        data,
		}, nil
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, "format must be csv or pdf")
	}
}

func formatPercent(value float64) string {
	return strconv.FormatFloat(value, 'f', 2, 64)
}
