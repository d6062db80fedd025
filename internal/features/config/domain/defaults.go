package domain

const defaultRequirements = `Create a single-page registration form with a clean and modern theme. Include social login icons (e.g., Google, Facebook, GitHub) purely for visual purposes—no functionality required. The form should have an email input field that is required and includes proper email format validation.`

const requirementsInstructions = `You are an expert software analyst. Read the application requirements carefully and clarify or confirm understanding.`

const userStoryInstructions = `You are a skilled Product Owner.
Break down the application requirements into exactly 8 detailed user stories.
For each user story, write clear and concise acceptance criteria using the Given / When / Then format.
Number only the user stories (1–8). Do not number the individual acceptance criteria.

User Story:
As a [type of user], I want to [perform some action], so that [I get some benefit].
Acceptance Criteria Format:
Given [some initial context],
When [an action is taken],
Then [expect a specific result].`

const codeGenInstructions = `You are a senior Jquery developer. Generate clear, concise sample jquery code implementing the given user story.`

const aggregatorInstructions = `You are a senior software engineer. Combine all the given Jquery code snippets into a single, complete, and logically structured code file. Remove redundancies and ensure it works as a coherent application. Do not add explanations — just return the final code.`

// DefaultAppConfig returns the built-in configuration. A config file only
// needs to carry the fields it overrides.
func DefaultAppConfig() *AppConfig {
	return &AppConfig{
		DefaultRequirements: defaultRequirements,
		Roles: Roles{
			Requirements: RoleConfig{Name: "RequirementsAgent", Instructions: requirementsInstructions},
			UserStory:    RoleConfig{Name: "UserStoryAgent", Instructions: userStoryInstructions},
			CodeGen:      RoleConfig{Name: "CodeGenAgent", Instructions: codeGenInstructions},
			Aggregator:   RoleConfig{Name: "AggregatorAgent", Instructions: aggregatorInstructions},
		},
		CodeGeneration: CodeGeneration{Concurrency: 1},
	}
}
