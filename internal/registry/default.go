package registry

import "github.com/jonathan/job-classifier/internal/types"

// defaultCategories is the built-in role-category table. Keywords are biased
// towards the English and Swedish phrasing seen on the job boards this toolkit
// targets. Multi-word phrases are matched atomically, so "site reliability"
// never matches a lone "site".
var defaultCategories = []types.RoleCategory{
	{
		Key:      "android_developer",
		Priority: 1,
		Keywords: []string{
			"android", "kotlin", "android sdk", "jetpack compose", "aosp",
			"android studio", "play store", "mobile development", "gradle",
			"android developer", "androidutvecklare", "mobilutvecklare",
		},
		Templates: types.TemplatePair{
			CV:          "templates/cv_android.tex",
			CoverLetter: "templates/cover_android.tex",
		},
	},
	{
		Key:      "devops_cloud",
		Priority: 1,
		Keywords: []string{
			"devops", "kubernetes", "terraform", "aws", "azure", "gcp",
			"docker", "ci/cd", "infrastructure as code", "helm", "ansible",
			"cloud engineer", "platform engineer", "molntjänster", "drifttekniker",
		},
		Templates: types.TemplatePair{
			CV:          "templates/cv_devops.tex",
			CoverLetter: "templates/cover_devops.tex",
		},
	},
	{
		Key:      "backend_developer",
		Priority: 2,
		Keywords: []string{
			"backend", "golang", "java", "spring boot", "microservices",
			"rest api", "postgresql", "grpc", "message queue", "kafka",
			"backend developer", "backendutvecklare", "systemutvecklare",
		},
		Templates: types.TemplatePair{
			CV:          "templates/cv_backend.tex",
			CoverLetter: "templates/cover_backend.tex",
		},
	},
	{
		Key:      "fullstack_developer",
		Priority: 2,
		Keywords: []string{
			"fullstack", "full stack", "react", "typescript", "javascript",
			"node.js", "vue", "next.js", "frontend", "css",
			"fullstack developer", "fullstackutvecklare", "webbutvecklare",
		},
		Templates: types.TemplatePair{
			CV:          "templates/cv_fullstack.tex",
			CoverLetter: "templates/cover_fullstack.tex",
		},
	},
	{
		Key:      "incident_management",
		Priority: 3,
		Keywords: []string{
			"incident management", "site reliability", "sre", "on-call",
			"observability", "monitoring", "pagerduty", "postmortem",
			"incident response", "slo", "incidenthantering", "beredskap",
		},
		Templates: types.TemplatePair{
			CV:          "templates/cv_incident.tex",
			CoverLetter: "templates/cover_incident.tex",
		},
	},
	{
		Key:      "data_engineer",
		Priority: 3,
		Keywords: []string{
			"data engineer", "data pipeline", "etl", "spark", "airflow",
			"data warehouse", "dbt", "bigquery", "snowflake",
			"dataingenjör", "datalager",
		},
		Templates: types.TemplatePair{
			CV:          "templates/cv_data.tex",
			CoverLetter: "templates/cover_data.tex",
		},
	},
}

// Default returns the built-in registry. It panics on construction failure
// since the table is compiled in; a failure here is a programmer error.
func Default() *Registry {
	reg, err := New(defaultCategories, DefaultFallbackKey)
	if err != nil {
		panic(err)
	}
	return reg
}
