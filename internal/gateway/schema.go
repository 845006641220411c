package gateway

import "github.com/google/generative-ai-go/genai"

// Request-side schemas sent with each generation call. They constrain
// what the model produces; internal/schemas validates what it actually
// returned before anything enters application state.

func analysisResponseSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"summary": {
				Type:        genai.TypeString,
				Description: "A 2-3 sentence professional summary of the candidate based on the provided resume or skills list.",
			},
			"extractedSkills": {
				Type:        genai.TypeArray,
				Description: "A list of all key technical and soft skills identified from the resume or provided by the user.",
				Items:       &genai.Schema{Type: genai.TypeString},
			},
			"domainStrength": {
				Type:        genai.TypeString,
				Description: "Identify the primary domain of expertise from the resume (e.g., 'Web Development', 'Data Science', 'AI/ML', 'Cybersecurity').",
			},
			"experienceLevel": {
				Type:        genai.TypeString,
				Description: "Estimate the candidate's experience level (e.g., 'Entry-Level', 'Mid-Level', 'Senior').",
			},
			"jobRecommendations": {
				Type:        genai.TypeArray,
				Description: "A list of 3 suitable job roles for the candidate.",
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"role":        {Type: genai.TypeString, Description: "The job title."},
						"company":     {Type: genai.TypeString, Description: "A plausible example company name (e.g., 'TechCorp', 'Innovate Inc.')."},
						"location":    {Type: genai.TypeString, Description: "A plausible location (e.g., 'San Francisco, CA', 'Remote')."},
						"description": {Type: genai.TypeString, Description: "A brief, 2-sentence description of why this role is a good fit."},
						"matchPercentage": {
							Type:        genai.TypeInteger,
							Description: "An estimated match percentage (0-100) based on skills.",
						},
						"matchingSkills": {
							Type:        genai.TypeArray,
							Items:       &genai.Schema{Type: genai.TypeString},
							Description: "A list of the user's skills that are relevant to this specific job.",
						},
						"skillsToLearn": {
							Type:        genai.TypeArray,
							Description: "For this specific job, a list of the top 2-3 most critical skills the user is missing to be a strong candidate. This field is mandatory and should not be empty unless the user's profile is a 100% perfect match for all job requirements.",
							Items: &genai.Schema{
								Type: genai.TypeObject,
								Properties: map[string]*genai.Schema{
									"skill":             {Type: genai.TypeString, Description: "The name of the missing skill."},
									"reason":            {Type: genai.TypeString, Description: "A short explanation of why this skill is important for this job role."},
									"estimatedTimeline": {Type: genai.TypeString, Description: "An estimated timeline to learn this skill (e.g., '2-4 weeks', '1 month')."},
									"learningRoadmap": {
										Type:        genai.TypeArray,
										Description: "A list of 2 learning resources for the skill.",
										Items: &genai.Schema{
											Type: genai.TypeObject,
											Properties: map[string]*genai.Schema{
												"title": {
													Type:        genai.TypeString,
													Description: "The descriptive title of the learning resource. This will be used to generate a web search, so it must be specific and accurate (e.g., 'React Hooks Crash Course - Traversy Media' or 'Official Python Documentation - Data Classes').",
												},
												"url": {
													Type:        genai.TypeString,
													Description: "A unique identifier for the resource. Can be a URL, but its primary purpose is for tracking completion. The title is more important.",
												},
												"type": {
													Type:        genai.TypeString,
													Enum:        []string{"YouTube", "Coursera", "Article", "Other"},
													Description: "The type of the resource.",
												},
											},
											Required: []string{"title", "url", "type"},
										},
									},
								},
								Required: []string{"skill", "reason", "estimatedTimeline", "learningRoadmap"},
							},
						},
					},
					Required: []string{"role", "company", "location", "description", "matchPercentage", "matchingSkills", "skillsToLearn"},
				},
			},
		},
		Required: []string{"summary", "extractedSkills", "domainStrength", "experienceLevel", "jobRecommendations"},
	}
}

func insightsResponseSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"summary": {
				Type:        genai.TypeString,
				Description: "A brief summary of the current job market for this domain.",
			},
			"trendingSkills": {
				Type:        genai.TypeArray,
				Items:       &genai.Schema{Type: genai.TypeString},
				Description: "List of top 5 trending skills in this domain.",
			},
			"salaryRanges": {
				Type:        genai.TypeString,
				Description: "A general salary range for roles in this domain (e.g., '$80k - $120k for Mid-Level').",
			},
			"hiringCompanies": {
				Type:        genai.TypeArray,
				Items:       &genai.Schema{Type: genai.TypeString},
				Description: "List of 3-5 example companies known for hiring in this domain.",
			},
		},
		Required: []string{"summary", "trendingSkills", "salaryRanges", "hiringCompanies"},
	}
}
