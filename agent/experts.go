package agent

import (
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:        "Facilitator",
		Description: `Leads the conversation with the user.`,
		ModelName:   model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			The user owns a portfolio of short-term rental properties, run as a company in Brazil.
			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			Devise a plan of questions to ask to each expert and come up with the best response to the user's request.
			Figures about the user's properties must come from the Accountant, never guess them.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewMarketAnalyst returns an expert of the short-term rental market, grounded by Google Search.
func NewMarketAnalyst() *Expert {
	return &Expert{
		Name: "MarketAnalyst",
		Description: `This is an expert of the short-term rental market.
		Aware of occupancy and daily rates by city and season, of property prices,
		of interest rates and of the regulation of rentals and their taxation.
		Ask the MarketAnalyst whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert of the short-term rental market. You can search and find about anything related to
			rental demand, average daily rates, occupancy, property prices, financing rates (SELIC, CDI, IPCA),
			and the taxes on rental companies. You leverage Google Search to ground your assertions in a solid truth.
			You can compare the user's figures with the market when asked to.
			`}}},
		},
	}
}

// NewAccountant returns the expert of the user's ledger: it builds the reports from src.
func NewAccountant(src Source) *Expert {
	lib := reportFunctions(src)

	return &Expert{
		Name: "Accountant",
		Description: `This is the Accountant. He is in charge of reading the user's rental ledger.
		He can build the income statement (DRE), balance sheet, cash flow, property metrics,
		loans, depreciation and valuation of the portfolio on any date or period.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are an accountant in charge of the user's rental portfolio ledger.
				You know how to use the Tools to extract relevant figures about the user's properties.
				You are part of a team of experts, yours is everything about the user's portfolio. They might ask
				you questions about the user's portfolio, pardon their approximative language and figure out what they meant.

				Use the available tools to get information about
				  - revenue, expenses and profit over a period
				  - assets, debts and equity on a date
				  - occupancy, ADR, RevPAR, cap rate and cash on cash of each property
				  - loans and their outstanding balance
				  - the value of the portfolio
			`}}},
		},
		Library: NewLibrary(lib),
	}
}
