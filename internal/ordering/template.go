package ordering

// ProjectTemplate is the legacy column layout for project rows. Per-type budget
// families ("LSTASalaries" and friends) are open vocabulary and therefore
// absent here; they land in the stable unmatched region after all listed
// families.
var ProjectTemplate = Template{
	Name("State"),
	Name("Id"),
	Name("Version"),
	Name("Status"),
	Name("Title"),
	Name("StartDate"),
	Name("EndDate"),
	Name("Abstract"),
	Name("StateGoal"),
	Name("Grantee"),
	Name("GranteeAddress"),
	Name("DirectorName"),
	Name("DirectorPhone"),
	Name("DirectorEmail"),
	Name("LSTATotal"),
	Name("StateTotal"),
	Name("OtherTotal"),
	Name("LocalTotal"),
	Name("InKindTotal"),
	Name("TotalBudget"),
	Group(
		Name("IntentName"),
		Name("IntentSubject"),
	),
	Name("ProjectTag"),
	Group(
		Name("LinkText"),
		Name("LinkURL"),
	),
	Name("Exemplary"),
	Name("TotalActivities"),
	Group(
		Name("ActivityNumber"),
		Name("ActivityTitle"),
		Name("ActivityAbstract"),
		Name("ActivityIntent"),
		Name("ActivityType"),
		Name("ActivityMode"),
		Name("ActivityFormat"),
		Name("AllAges"),
		Name("AgesBirthFive"),
		Name("AgesSixTwelve"),
		Name("AgesThirteenSeventeen"),
		Name("AgesEighteenTwentyFive"),
		Name("AgesTwentySixSixtyFour"),
		Name("AgesSixtyFivePlus"),
		Name("EconomicDisadvantage"),
		Name("EthnicMinority"),
		Name("ImmigrantRefugee"),
		Name("Disability"),
		Name("LimitedLiteracy"),
		Name("FamiliesIntergenerational"),
		Name("Unemployed"),
		Name("LibraryWorkforce"),
		Name("TargetedOrGeneral"),
		Name("LocaleUrban"),
		Name("LocaleSuburban"),
		Name("LocaleRural"),
		Name("LocaleStatewide"),
		Group(
			Name("QuantityName"),
			Name("QuantityValue"),
		),
		Group(
			Name("InstitutionName"),
			Name("InstitutionType"),
		),
		Group(
			Name("PartnerArea"),
			Name("PartnerType"),
		),
	),
}

// FSRTemplate is the legacy column layout for financial status report rows.
var FSRTemplate = Template{
	Name("State"),
	Name("Status"),
	Name("FederalAllotment"),
	Name("FederalExpended"),
	Name("StateMatch"),
	Name("LocalMatch"),
	Name("OtherMatch"),
	Name("InKindMatch"),
	Name("TotalExpended"),
	Name("UnliquidatedObligations"),
	Name("UnobligatedBalance"),
	Name("AdminAllowance"),
	Name("AdminExpended"),
}
