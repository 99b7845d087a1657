package domain

import (
	"fmt"
	"strings"
)

type Grade string

const (
	GradeNone Grade = ""
	GradeS    Grade = "S"
	GradeA    Grade = "A"
	GradeB    Grade = "B"
	GradeC    Grade = "C"
	GradeD    Grade = "D"
	GradeE    Grade = "E"
	GradeU    Grade = "U"
	GradeW    Grade = "W"
	GradeI    Grade = "I"
	GradeIOP  Grade = "I_OP"
	GradeIPR  Grade = "I_PR"
)

// AllGrades lists every recordable grade, best first. GradeNone is excluded.
var AllGrades = []Grade{
	GradeS, GradeA, GradeB, GradeC, GradeD, GradeE,
	GradeU, GradeW, GradeI, GradeIOP, GradeIPR,
}

var gradePoints = map[Grade]int{
	GradeS:   10,
	GradeA:   9,
	GradeB:   8,
	GradeC:   7,
	GradeD:   6,
	GradeE:   4,
	GradeU:   0,
	GradeW:   0,
	GradeI:   0,
	GradeIOP: 0,
	GradeIPR: 0,
}

// Points returns the grade point value. Administrative grades, absent grades
// and unknown values are worth 0.
func (g Grade) Points() int {
	return gradePoints[g]
}

// Contributing reports whether the grade counts toward GPA.
func (g Grade) Contributing() bool {
	switch g {
	case GradeS, GradeA, GradeB, GradeC, GradeD, GradeE:
		return true
	}
	return false
}

// Valid reports whether g is absent or one of the recordable grades.
func (g Grade) Valid() bool {
	if g == GradeNone {
		return true
	}
	_, ok := gradePoints[g]
	return ok
}

// ParseGrade accepts grades case-insensitively. "" and "-" mean absent.
func ParseGrade(s string) (Grade, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" || s == "-" {
		return GradeNone, nil
	}
	g := Grade(s)
	if _, ok := gradePoints[g]; !ok {
		return GradeNone, fmt.Errorf("unknown grade %q", s)
	}
	return g, nil
}

type Level string

const (
	LevelFoundation Level = "foundation"
	LevelDiploma    Level = "diploma"
	LevelBSc        Level = "bsc"
	LevelBS         Level = "bs"
)

// AllLevels lists the curriculum stages in order.
var AllLevels = []Level{LevelFoundation, LevelDiploma, LevelBSc, LevelBS}

// Ordinal returns the 1-based stage position, or 0 for an unknown level.
func (l Level) Ordinal() int {
	switch l {
	case LevelFoundation:
		return 1
	case LevelDiploma:
		return 2
	case LevelBSc:
		return 3
	case LevelBS:
		return 4
	}
	return 0
}

// Label returns the display name used on transcripts.
func (l Level) Label() string {
	switch l {
	case LevelFoundation:
		return "Foundation"
	case LevelDiploma:
		return "Diploma"
	case LevelBSc:
		return "BSc Degree"
	case LevelBS:
		return "BS Degree"
	}
	return string(l)
}

func ParseLevel(s string) (Level, error) {
	l := Level(strings.ToLower(strings.TrimSpace(s)))
	if l.Ordinal() == 0 {
		return "", fmt.Errorf("unknown level %q (want foundation, diploma, bsc or bs)", s)
	}
	return l, nil
}

type Program string

const (
	ProgramDataScience       Program = "data_science"
	ProgramElectronicSystems Program = "electronic_systems"
)

var AllPrograms = []Program{ProgramDataScience, ProgramElectronicSystems}

func (p Program) Label() string {
	switch p {
	case ProgramDataScience:
		return "Data Science"
	case ProgramElectronicSystems:
		return "Electronic Systems"
	}
	return string(p)
}

// ParseProgram accepts the canonical key or a short alias ("ds", "es").
func ParseProgram(s string) (Program, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "data_science", "ds", "data-science":
		return ProgramDataScience, nil
	case "electronic_systems", "es", "electronic-systems":
		return ProgramElectronicSystems, nil
	}
	return "", fmt.Errorf("unknown program %q (want data_science or electronic_systems)", s)
}

type SkillCluster string

const (
	ClusterEnglish     SkillCluster = "English"
	ClusterMathematics SkillCluster = "Mathematics"
	ClusterStatistics  SkillCluster = "Statistics"
	ClusterProgramming SkillCluster = "Programming"
	ClusterDatabase    SkillCluster = "Database"
	ClusterML          SkillCluster = "ML"
	ClusterBusiness    SkillCluster = "Business"
	ClusterElectronics SkillCluster = "Electronics"
	ClusterSystems     SkillCluster = "Systems"
	ClusterProject     SkillCluster = "Project"
	ClusterGeneral     SkillCluster = "General"
)
