package api

// SampleData is a realistic tab-delimited personnel-history excerpt for
// the presentation layer's "copy sample" affordance. It exercises every
// classification path: service at several regions, a one-year-plus
// childcare leave, a reinstatement, and an ongoing posting.
const SampleData = "2012.03.01 ~ 2016.02.29\t신규임용\t교사\t교무부\t청주중앙초등학교\n" +
	"2016.03.01 ~ 2020.02.29\t교육청내 전보\t교사\t연구부\t청주서원중학교\n" +
	"2020.03.01 ~ 2021.02.28\t육아휴직\t교사\t교무부\t충주중학교\n" +
	"2021.03.01 ~ 2021.03.01\t휴직복직\t교사\t교무부\t충주중학교\n" +
	"2021.03.02 ~ 2024.02.29\t교육청간 전보\t교사\t교무부\t충주중학교\n" +
	"2024.03.01 ~\t정기전보\t교사\t교무부\t충주고등학교\n"
