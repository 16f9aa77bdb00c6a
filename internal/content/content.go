// Package content holds the portfolio's static section data.
package content

import (
	"strings"

	"go-portfolio-backend/internal/domain"

	"github.com/samber/lo"
)

const OwnerName = "Sahil Chawla"

const (
	ProfileGreeting = "Hello, I'm"
	ProfileTitle    = "Data Scientist"
	ProfileSummary  = "With over 3.5 years of professional experience, I specialize in Data Science within the Ed-tech and Supply Chain domains. My enthusiasm for Generative AI and Cloud technologies drives my passion to automate processes and simplify complex tasks, ensuring efficiency and innovation in every project I undertake."
	ProfileImage    = "profile.jpg"
)

const AboutHeading = "About " + OwnerName

var aboutParagraphs = []string{
	"I am an accomplished Associate Data Scientist with over 3.5 years of experience, renowned for delivering impactful results in the Ed-tech and Supply Chain domains. My journey has been marked by a deep expertise in Data Analysis and Data Engineering, coupled with a relentless pursuit of innovation through Generative AI and Cloud technologies.",
	"At Great Learning, I have spearheaded the development of numerous Data Science courses, including the prestigious Applications of Artificial Intelligence, PGP Data Science and Engineering, PGP Data Engineering, and the Great Learning Career Academy programs. My role involves comprehensive project management, strategic planning, and the creation of cutting-edge educational content that pushes the boundaries of traditional learning.",
	"My passion lies in automating processes to make tasks easier and more efficient, leveraging tools like Python, SQL, Spark, and cloud platforms like Microsoft Azure. This enthusiasm drives me to continuously explore and integrate new technologies into my work, ensuring that I stay at the forefront of the Data Science field.",
}

var education = []domain.Education{
	{
		Degree:      "Executive PGP in Management (Data Science & Analytics)",
		Institution: "Great Lakes Institute of Management, Gurugram",
		Duration:    "Feb 2022 - Feb 2023",
	},
	{
		Degree:      "Post Graduate Program in Data Science & Engineering",
		Institution: "Great Lakes Institute of Management, Gurugram",
		Duration:    "Oct 2020 - Aug 2021",
	},
	{
		Degree:      "Bachelor of Technology in Civil Engineering",
		Institution: "Anand International College of Engineering",
		Duration:    "2013 - 2017",
		Percentage:  "65%",
	},
	{
		Degree:      "12th - PCMB",
		Institution: "National Institute of Open Schooling",
		Duration:    "2011 - 2012",
		Percentage:  "65%",
	},
	{
		Degree:      "10th Grade",
		Institution: "St. Anselms Sr. Sec. School",
		Duration:    "2009 - 2010",
		Percentage:  "8.6 CGPA",
	},
}

// ExperienceEntry keeps the description as written; ParseHighlights splits it.
type ExperienceEntry struct {
	Title        string
	Company      string
	Duration     string
	Domain       string
	Technologies []string
	Description  string
}

var experience = []ExperienceEntry{
	{
		Title:        "Associate Data Scientist - Intern",
		Company:      "Great Learning, Gurugram",
		Duration:     "Aug 2021 - Dec 2021",
		Domain:       "Ed-tech",
		Technologies: []string{"Python", "SQL", "Excel", "Tableau", "Microsoft Azure"},
		Description: `
		- Worked closely with students to help them learn and apply cutting-edge technologies in data science.
		- Developed and taught courses on Microsoft Azure ML for creating new projects on Artificial Neural Networks (ANNs).
		- Created learning content on IBM Watson Assistant to help students understand and create Conversational/Action-based chatbots.
		- Managed the PGP-Data Engineering program, showcasing the ability to take ownership of complex programs.
		`,
	},
	{
		Title:        "Associate Data Scientist",
		Company:      "Great Learning, Gurugram",
		Duration:     "Jan 2022 - Apr 2024",
		Domain:       "Ed-tech",
		Technologies: []string{"Python", "SQL", "Excel", "Tableau", "Machine Learning"},
		Description: `
		- Renowned for a strong track record in New Product Development (NPD), particularly in creating and spearheading Data Science courses.
		- Architect of significant programs such as Applications of Artificial Intelligence, PGP Data Science and Engineering, PGP Data Engineering, and the Great Learning Career Academy.
		- Demonstrates exceptional ownership, strategic foresight, and a commitment to developing cutting-edge educational content that pushes the boundaries of traditional learning.
		- Successfully orchestrated the operations of 25 running batches of the Great Learning Career Academy program, impacting over 7,000 student careers worldwide.
		- Utilizes platforms such as Excel, Tableau, and programming in Python (with libraries like Matplotlib and Seaborn) for deep data analysis and decision-making.
		- Developed an AI-code tutor providing real-time, contextual hints to users, leading to a 40% increase in user satisfaction and a 30% uplift in platform engagement metrics.
		`,
	},
	{
		Title:        "Technology Consultant - Data Scientist",
		Company:      "Ernst & Young",
		Duration:     "Apr 2024 - Present",
		Domain:       "Supply Chain",
		Technologies: []string{"Excel", "SQL", "PL/SQL", "Python", "Langchain"},
		Description: `
		- Leveraged predictive analytics to streamline inventory management, minimizing stockouts and improving supply chain accuracy by 18% for Schwan's company.
		- Developed an advanced Generative AI solution using Langchain to generate high-quality synthetic data, addressing data privacy and availability challenges.
		- Architected and implemented a custom Supply Chain Planning and Optimization (SCPO) Solver for BlueYonder's Transportation Management System using Oracle PL/SQL.
		- Created multi-condition loading processes and source shifting algorithms that increased truck utilization by 90% and reduced transportation costs by 50% for Ferrero Rocher.
		- Developed sophisticated truck loading optimization algorithms incorporating multiple constraints (stackability, weight limits, priority shipments), resulting in maximized asset utilization and improved operational efficiency.
		- Clientele: The Schwans company, Ferrero Rocher, Carnival Cruise Line, BlueYonder.
		`,
	},
}

// technicalSkills is ordered; the radar axes follow this order.
var technicalSkills = []domain.Skill{
	{Name: "Python", Proficiency: 90},
	{Name: "SQL", Proficiency: 85},
	{Name: "Spark", Proficiency: 70},
	{Name: "Data Analysis", Proficiency: 90},
	{Name: "Data Engineering", Proficiency: 80},
	{Name: "Machine Learning", Proficiency: 80},
	{Name: "Deep Learning", Proficiency: 75},
	{Name: "Statistics", Proficiency: 80},
	{Name: "Tableau", Proficiency: 70},
	{Name: "Power BI", Proficiency: 70},
	{Name: "Looker Studio", Proficiency: 60},
	{Name: "Microsoft Azure", Proficiency: 70},
	{Name: "Excel", Proficiency: 90},
	{Name: "NLP", Proficiency: 70},
	{Name: "IBM Watson", Proficiency: 60},
	{Name: "Langchain", Proficiency: 50},
	{Name: "PL/SQL", Proficiency: 65},
	{Name: "Predictive Analytics", Proficiency: 80},
	{Name: "Generative AI", Proficiency: 60},
}

var languages = []string{"English", "Hindi"}

const SkillChartTitle = "Technical Skills Proficiency"

// ProjectEntry references its image by file name under the projects dir.
type ProjectEntry struct {
	Title       string
	Description string
	ImageFile   string
	Link        string
}

var projects = []ProjectEntry{
	{
		Title:       "Annual Turnover Prediction for Restaurant",
		Description: "Predict the Annual Turnover of a Restaurant based on provided variables. Utilized LGBM Regressor, CATBOOST Regressor, and Random Forest Regressor to achieve optimal RMSE.",
		ImageFile:   "project1.jpg",
		Link:        "https://github.com/Sahilchawla1094/Annual-Turnover-of-a-restaurant",
	},
	{
		Title:       "Home Credit Default Risk",
		Description: "Identify if a new client shows any risk of loan default based on provided variables. Implemented Logistic Regression, Random Forest Classifier, and LightGBM Classifier to achieve a good AUC score.",
		ImageFile:   "project2.jpg",
		Link:        "https://github.com/Sahilchawla1094/Home-Credit-Default-Risk",
	},
	{
		Title:       "Business Loan Application Default Prediction",
		Description: "Determine if a new business loan application will default based on provided variables. Employed Logistic Regression, Decision Tree Classifier, and Random Forest Classifier to predict the best F1 score.",
		ImageFile:   "project3.jpg",
		Link:        "https://github.com/Sahilchawla1094/Predicting-whether-a-business-loan-applicant-will-default-or-not",
	},
	{
		Title:       "Thera Bank Liability Prediction",
		Description: "Predict the likelihood of a liability customer buying personal loans using Artificial Neural Networks (ANN) to achieve the best F1 score.",
		ImageFile:   "project4.jpg",
		Link:        "https://github.com/Sahilchawla1094/Thera-Bank",
	},
	{
		Title:       "Water Portability Analysis",
		Description: "Identify whether water is safe for drinking based on provided variables. Utilized Artificial Neural Networks (ANN) to achieve the best Accuracy score.",
		ImageFile:   "project5.jpg",
		Link:        "https://github.com/Sahilchawla1094/Water-Potability",
	},
	{
		Title:       "Counter-Strike: GO Round Winner Prediction",
		Description: "Predict the match winner (terrorist or counter-terrorist) using variables from the dataset. Implemented Logistic Regression, Decision Tree Classifier, Random Forest Classifier, and XG Boost to achieve the best Accuracy score.",
		ImageFile:   "project6.jpg",
		Link:        "https://github.com/Sahilchawla1094/Counter-Strike--GO-Round-winner",
	},
}

// LinkEntry is a titled link with an icon under the icons dir.
type LinkEntry struct {
	Title       string
	Description string
	IconFile    string
	Link        string
}

const (
	githubURL   = "https://github.com/Sahilchawla1094"
	linkedInURL = "https://www.linkedin.com/in/sahil-chawla9799558521/"
	emailURL    = "mailto:Sahilchawla1094@gmail.com"
)

var platforms = []LinkEntry{
	{Title: "GitHub", Description: "All things code", IconFile: "github.png", Link: githubURL},
	{Title: "LinkedIn", Description: "Connect with me professionally", IconFile: "linkedin.png", Link: linkedInURL},
	{Title: "Tableau Public", Description: "Check out my data visualizations", IconFile: "tableau.png", Link: "https://public.tableau.com/app/profile/sahil.chawla"},
}

var footerLinks = []LinkEntry{
	{Title: "GitHub", IconFile: "github.png", Link: githubURL},
	{Title: "LinkedIn", IconFile: "linkedin.png", Link: linkedInURL},
	{Title: "Email", IconFile: "email.png", Link: emailURL},
}

// ContactEntry is one line of the contact information block.
type ContactEntry struct {
	Label    string
	Value    string
	Href     string
	IconFile string
}

var contactDetails = []ContactEntry{
	{Label: "Phone", Value: "+919799558521", Href: "tel:+919799558521", IconFile: "phone.png"},
	{Label: "Email", Value: "Sahilchawla1094@gmail.com", Href: emailURL, IconFile: "email.png"},
	{Label: "Address", Value: "A45 HKM Nagar, Alwar (Raj)", IconFile: "address.png"},
}

// The accessors below return copies so callers cannot edit the literals.

func AboutParagraphs() []string       { return clone(aboutParagraphs) }
func Education() []domain.Education   { return clone(education) }
func Experience() []ExperienceEntry   { return clone(experience) }
func TechnicalSkills() []domain.Skill { return clone(technicalSkills) }
func Languages() []string             { return clone(languages) }
func Projects() []ProjectEntry        { return clone(projects) }
func Platforms() []LinkEntry          { return clone(platforms) }
func FooterLinks() []LinkEntry        { return clone(footerLinks) }
func ContactDetails() []ContactEntry  { return clone(contactDetails) }

func clone[T any](s []T) []T {
	return append([]T(nil), s...)
}

// ParseHighlights splits a bulleted description into one entry per line,
// dropping blank lines and the leading "- " marker.
func ParseHighlights(description string) []string {
	return lo.FilterMap(strings.Split(description, "\n"), func(line string, _ int) (string, bool) {
		line = strings.TrimSpace(line)
		line = strings.TrimSpace(strings.TrimPrefix(line, "-"))
		return line, line != ""
	})
}

// BuildSkillChart lays skills out as radar data on a 0..100 axis.
func BuildSkillChart(title string, skills []domain.Skill) domain.SkillChart {
	theta := lo.Map(skills, func(s domain.Skill, _ int) string { return s.Name })
	r := lo.Map(skills, func(s domain.Skill, _ int) int { return s.Proficiency })
	if len(skills) > 0 {
		theta = append(theta, theta[0])
		r = append(r, r[0])
	}

	return domain.SkillChart{
		Title:       title,
		AxisMin:     0,
		AxisMax:     100,
		Tick:        20,
		Skills:      skills,
		ClosedTheta: theta,
		ClosedR:     r,
	}
}
