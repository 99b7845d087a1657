package catalog

import "github.com/alexanderramin/gradecast/internal/domain"

type entry struct {
	name    string
	credits int
	cluster domain.SkillCluster
}

// curriculum lists required courses per program and level, in the order
// they are normally taken.
var curriculum = map[domain.Program]map[domain.Level][]entry{
	domain.ProgramDataScience: {
		domain.LevelFoundation: {
			{"English I", 4, domain.ClusterEnglish},
			{"Mathematics for Data Science I", 4, domain.ClusterMathematics},
			{"Statistics for Data Science I", 4, domain.ClusterStatistics},
			{"Computational Thinking", 4, domain.ClusterProgramming},
			{"English II", 4, domain.ClusterEnglish},
			{"Mathematics for Data Science II", 4, domain.ClusterMathematics},
			{"Statistics for Data Science II", 4, domain.ClusterStatistics},
			{"Programming in Python", 4, domain.ClusterProgramming},
		},
		domain.LevelDiploma: {
			{"Database Management Systems", 4, domain.ClusterDatabase},
			{"Modern Application Development I", 4, domain.ClusterProgramming},
			{"Programming in Java", 4, domain.ClusterProgramming},
			{"Machine Learning Foundations", 4, domain.ClusterML},
			{"Business Data Management", 4, domain.ClusterBusiness},
			{"Modern Application Development II", 4, domain.ClusterProgramming},
			{"Machine Learning Techniques", 4, domain.ClusterML},
			{"Machine Learning Practice", 4, domain.ClusterML},
			{"Diploma Project I (Programming)", 4, domain.ClusterProject},
			{"Diploma Project II (Data Science)", 4, domain.ClusterProject},
		},
		domain.LevelBSc: {
			{"Software Engineering", 4, domain.ClusterProgramming},
			{"Strategies for Professional Growth", 4, domain.ClusterBusiness},
			{"BSc Elective I", 4, domain.ClusterGeneral},
			{"BSc Elective II", 4, domain.ClusterGeneral},
			{"BSc Project", 4, domain.ClusterProject},
		},
		domain.LevelBS: {
			{"BS Elective I", 4, domain.ClusterGeneral},
			{"BS Elective II", 4, domain.ClusterGeneral},
			{"BS Elective III", 4, domain.ClusterGeneral},
			{"BS Elective IV", 4, domain.ClusterGeneral},
			{"Capstone Project", 6, domain.ClusterProject},
		},
	},
	domain.ProgramElectronicSystems: {
		domain.LevelFoundation: {
			{"English I", 3, domain.ClusterEnglish},
			{"Mathematics I for ES", 4, domain.ClusterMathematics},
			{"Introduction to Electronic Systems", 4, domain.ClusterElectronics},
			{"Introduction to Programming", 4, domain.ClusterProgramming},
			{"English II", 3, domain.ClusterEnglish},
			{"Mathematics II for ES", 4, domain.ClusterMathematics},
			{"Digital Systems", 4, domain.ClusterElectronics},
			{"Electrical Circuits", 4, domain.ClusterElectronics},
		},
		domain.LevelDiploma: {
			{"Electronic Circuits", 4, domain.ClusterElectronics},
			{"Signals and Systems", 4, domain.ClusterSystems},
			{"Microprocessors and Interfacing", 4, domain.ClusterElectronics},
			{"Control Systems", 4, domain.ClusterSystems},
			{"Embedded Systems", 4, domain.ClusterSystems},
			{"Digital Signal Processing", 4, domain.ClusterSystems},
			{"Diploma Project (Electronic Systems)", 4, domain.ClusterProject},
		},
		domain.LevelBSc: {
			{"Electromagnetic Fields", 4, domain.ClusterElectronics},
			{"Communication Systems", 4, domain.ClusterSystems},
			{"BSc Elective I (ES)", 4, domain.ClusterGeneral},
			{"BSc Project (ES)", 4, domain.ClusterProject},
		},
		domain.LevelBS: {
			{"BS Elective I (ES)", 4, domain.ClusterGeneral},
			{"BS Elective II (ES)", 4, domain.ClusterGeneral},
			{"Advanced Embedded Systems", 4, domain.ClusterSystems},
			{"Capstone Project (ES)", 6, domain.ClusterProject},
		},
	},
}
